package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningMatchesConstants(t *testing.T) {
	tuning := DefaultTuning()

	if tuning.FireRate.Initial != 800 {
		t.Errorf("FireRate.Initial: expected 800, got %v", tuning.FireRate.Initial)
	}
	if tuning.FireRate.MinLimit != 200 {
		t.Errorf("FireRate.MinLimit: expected 200, got %v", tuning.FireRate.MinLimit)
	}
	if tuning.Player.Speed != 300 {
		t.Errorf("Player.Speed: expected 300, got %v", tuning.Player.Speed)
	}
	if tuning.Enemy.SpeedMin != 150 || tuning.Enemy.SpeedMax != 250 {
		t.Errorf("Enemy speed range: expected [150, 250], got [%d, %d]", tuning.Enemy.SpeedMin, tuning.Enemy.SpeedMax)
	}
	if tuning.RestartDelay != 8000 {
		t.Errorf("RestartDelay: expected 8000, got %v", tuning.RestartDelay)
	}
	if err := tuning.Validate(); err != nil {
		t.Fatalf("default tuning should be valid: %v", err)
	}
}

func TestLoadTuning(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("空路径使用默认值", func(t *testing.T) {
		tuning, err := LoadTuning("")
		if err != nil {
			t.Fatalf("LoadTuning failed: %v", err)
		}
		if tuning != DefaultTuning() {
			t.Errorf("expected defaults, got %+v", tuning)
		}
	})

	t.Run("部分覆盖保留其他默认值", func(t *testing.T) {
		content := `
fireRate:
  initial: 600
enemy:
  speedMax: 300
pointerHoldPauses: true
`
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		tuning, err := LoadTuning(path)
		if err != nil {
			t.Fatalf("LoadTuning failed: %v", err)
		}
		if tuning.FireRate.Initial != 600 {
			t.Errorf("FireRate.Initial: expected 600, got %v", tuning.FireRate.Initial)
		}
		if tuning.FireRate.MinLimit != FireRateMinLimit {
			t.Errorf("FireRate.MinLimit should keep default, got %v", tuning.FireRate.MinLimit)
		}
		if tuning.Enemy.SpeedMax != 300 || tuning.Enemy.SpeedMin != EnemySpeedMin {
			t.Errorf("unexpected enemy speed range [%d, %d]", tuning.Enemy.SpeedMin, tuning.Enemy.SpeedMax)
		}
		if !tuning.PointerHoldPauses {
			t.Error("PointerHoldPauses should be true")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("YAML格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("fireRate: [1, 2"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		tuning, err := LoadTuning(path)
		if err == nil {
			t.Fatal("expected parse error")
		}
		if tuning != DefaultTuning() {
			t.Error("defaults should be returned on parse error")
		}
	})

	t.Run("非法参数", func(t *testing.T) {
		path := filepath.Join(tempDir, "invalid.yaml")
		content := "fireRate:\n  initial: 100\n  minLimit: 200\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := LoadTuning(path)
		if !errors.Is(err, ErrInvalidTuning) {
			t.Fatalf("expected ErrInvalidTuning, got %v", err)
		}
	})
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Tuning)
	}{
		{"速度范围颠倒", func(tu *Tuning) { tu.Enemy.SpeedMin, tu.Enemy.SpeedMax = 300, 100 }},
		{"下限为零", func(tu *Tuning) { tu.FireRate.MinLimit = 0 }},
		{"负衰减", func(tu *Tuning) { tu.FireRate.Decrease = -1 }},
		{"音量超出范围", func(tu *Tuning) { tu.Sound.FireVolume = 1.5 }},
		{"负边距", func(tu *Tuning) { tu.Enemy.SpawnMargin = -1 }},
		{"零生成间隔", func(tu *Tuning) { tu.Enemy.SpawnInterval = 0 }},
		{"负重开延迟", func(tu *Tuning) { tu.RestartDelay = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.modify(&tuning)
			if err := tuning.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestClampFireRate(t *testing.T) {
	tuning := DefaultTuning()
	if got := tuning.ClampFireRate(150); got != 200 {
		t.Errorf("ClampFireRate(150) = %v, want 200", got)
	}
	if got := tuning.ClampFireRate(500); got != 500 {
		t.Errorf("ClampFireRate(500) = %v, want 500", got)
	}
}
