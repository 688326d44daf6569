package services

import (
	"errors"
	"testing"

	"github.com/scolaris/scolaris/internal/pkg/apperrors"
)

func TestDiffEnrollment(t *testing.T) {
	tests := []struct {
		name     string
		updated  []int64
		previous []int64
		want     []int64
	}{
		{"no change", []int64{1, 2}, []int64{1, 2}, nil},
		{"all new", []int64{1, 2}, nil, []int64{1, 2}},
		{"one added", []int64{1, 2, 3}, []int64{1, 2}, []int64{3}},
		{"removal yields nothing", []int64{1}, []int64{1, 2}, nil},
		{"add and remove", []int64{1, 3}, []int64{1, 2}, []int64{3}},
		{"duplicate in request counts once", []int64{3, 3, 1}, []int64{1}, []int64{3}},
		{"both empty", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffEnrollment(tt.updated, tt.previous)
			if len(got) != len(tt.want) {
				t.Fatalf("diffEnrollment() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("diffEnrollment() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   *string
		end     *string
		wantErr error
	}{
		{"both nil", nil, nil, nil},
		{"start only", strPtr("09:00"), nil, nil},
		{"end only", nil, strPtr("11:00"), nil},
		{"valid range", strPtr("09:00"), strPtr("11:00"), nil},
		{"end equals start", strPtr("09:00"), strPtr("09:00"), apperrors.ErrInvalidTimeRange},
		{"end before start", strPtr("11:00"), strPtr("09:00"), apperrors.ErrInvalidTimeRange},
		{"malformed start", strPtr("9am"), strPtr("11:00"), apperrors.ErrMalformedTime},
		{"malformed end", strPtr("09:00"), strPtr("24:00"), apperrors.ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTimeRange(tt.start, tt.end)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateTimeRange() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateTimeRange() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
