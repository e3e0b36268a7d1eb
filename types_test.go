package cvsnap

import (
	"errors"
	"testing"
	"time"
)

func TestStampValidate(t *testing.T) {
	tests := []struct {
		name    string
		stamp   *Stamp
		wantErr error
	}{
		{name: "nil stamp means defaults", stamp: nil},
		{name: "empty position", stamp: &Stamp{}},
		{name: "left", stamp: &Stamp{Position: "left"}},
		{name: "center", stamp: &Stamp{Position: "center"}},
		{name: "right", stamp: &Stamp{Position: "right"}},
		{name: "case insensitive", stamp: &Stamp{Position: "Right"}},
		{name: "invalid position", stamp: &Stamp{Position: "top"}, wantErr: ErrInvalidStampPosition},
		{name: "invalid position bottom", stamp: &Stamp{Position: "bottom"}, wantErr: ErrInvalidStampPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stamp.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	svc, _, _, _ := newTestService(WithTimeout(5 * time.Second))
	defer svc.Close()

	if svc.cfg.timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", svc.cfg.timeout)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for duration %v", d)
				}
			}()
			WithTimeout(d)
		}()
	}
}

func TestWithLedgerPath(t *testing.T) {
	svc, _, _, _ := newTestService(WithLedgerPath("custom.json"))
	defer svc.Close()

	if svc.cfg.ledgerPath != "custom.json" {
		t.Errorf("expected custom.json, got %q", svc.cfg.ledgerPath)
	}
}

func TestWithLedgerPath_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty path")
		}
	}()
	WithLedgerPath("")
}
