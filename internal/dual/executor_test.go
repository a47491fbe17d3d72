package dual

import (
	"context"
	"errors"
	"testing"
)

func TestExecute_StrategyMatrix(t *testing.T) {
	realErr := errors.New("connection refused")

	tests := []struct {
		name        string
		useMock     bool
		strategy    Strategy
		realErr     error
		want        string
		wantErr     error
		wantMockRun bool
		wantRealRun bool
	}{
		{
			name:        "auto with mock flag runs mock only",
			useMock:     true,
			strategy:    StrategyAuto,
			want:        "mock",
			wantMockRun: true,
		},
		{
			name:        "auto without mock flag runs real only",
			useMock:     false,
			strategy:    StrategyAuto,
			want:        "real",
			wantRealRun: true,
		},
		{
			name:        "auto falls back to mock when real fails",
			useMock:     false,
			strategy:    StrategyAuto,
			realErr:     realErr,
			want:        "mock",
			wantMockRun: true,
			wantRealRun: true,
		},
		{
			name:        "mock strategy ignores the flag",
			useMock:     false,
			strategy:    StrategyMock,
			want:        "mock",
			wantMockRun: true,
		},
		{
			name:        "real strategy ignores the flag",
			useMock:     true,
			strategy:    StrategyReal,
			want:        "real",
			wantRealRun: true,
		},
		{
			name:        "real strategy propagates failures without fallback",
			useMock:     true,
			strategy:    StrategyReal,
			realErr:     realErr,
			wantErr:     realErr,
			wantRealRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mockRan, realRan bool
			mockOp := func(ctx context.Context) (string, error) {
				mockRan = true
				return "mock", nil
			}
			realOp := func(ctx context.Context) (string, error) {
				realRan = true
				return "real", tt.realErr
			}

			got, err := Execute(context.Background(), NewExecutor(tt.useMock), tt.strategy, mockOp, realOp)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
			if mockRan != tt.wantMockRun {
				t.Errorf("mock op ran = %v, want %v", mockRan, tt.wantMockRun)
			}
			if realRan != tt.wantRealRun {
				t.Errorf("real op ran = %v, want %v", realRan, tt.wantRealRun)
			}
		})
	}
}

func TestExecuteMutation_RunsExactlyOneOp(t *testing.T) {
	tests := []struct {
		name    string
		useMock bool
		want    string
	}{
		{name: "mock flag routes to mock", useMock: true, want: "mock"},
		{name: "real flag routes to real", useMock: false, want: "real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := 0
			mockOp := func(ctx context.Context) (string, error) {
				runs++
				return "mock", nil
			}
			realOp := func(ctx context.Context) (string, error) {
				runs++
				return "real", nil
			}

			got, err := ExecuteMutation(context.Background(), NewExecutor(tt.useMock), mockOp, realOp)
			if err != nil {
				t.Fatalf("ExecuteMutation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExecuteMutation() = %q, want %q", got, tt.want)
			}
			if runs != 1 {
				t.Errorf("expected exactly one op to run, got %d", runs)
			}
		})
	}
}

func TestExecuteMutation_RealFailureDoesNotFallBack(t *testing.T) {
	realErr := errors.New("deadlock detected")
	mockRan := false

	_, err := ExecuteMutation(context.Background(), NewExecutor(false),
		func(ctx context.Context) (int, error) {
			mockRan = true
			return 0, nil
		},
		func(ctx context.Context) (int, error) {
			return 0, realErr
		},
	)

	if !errors.Is(err, realErr) {
		t.Fatalf("expected real mutation error, got %v", err)
	}
	if mockRan {
		t.Error("mock op must not run after a failed real mutation")
	}
}
