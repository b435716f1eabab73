package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planentity "wakeup_backend/internal/feature/plan/domain/entity"
)

// TestComputeWakeUpTime は出発時刻とステップ列から起床時刻が正しく導出されることをテーブル駆動テストで検証します。
func TestComputeWakeUpTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		departureTime string
		steps         []planentity.Step
		expected      string
	}{
		{
			name:          "two steps subtract total duration",
			departureTime: "08:00:00",
			steps: []planentity.Step{
				{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
				{StepName: "Dress", StepTime: 5, ProcessOrder: 2},
			},
			expected: "07:45:00",
		},
		{
			name:          "single step",
			departureTime: "07:30:00",
			steps: []planentity.Step{
				{StepName: "Breakfast", StepTime: 20, ProcessOrder: 1},
			},
			expected: "07:10:00",
		},
		{
			name:          "wraps across midnight to previous day",
			departureTime: "00:10:00",
			steps: []planentity.Step{
				{StepName: "Pack", StepTime: 20, ProcessOrder: 1},
			},
			expected: "23:50:00",
		},
		{
			name:          "zero duration step leaves clock unchanged",
			departureTime: "09:00:00",
			steps: []planentity.Step{
				{StepName: "Grab keys", StepTime: 0, ProcessOrder: 1},
			},
			expected: "09:00:00",
		},
		{
			name:          "subtraction crosses an hour boundary",
			departureTime: "08:05:00",
			steps: []planentity.Step{
				{StepName: "Shower", StepTime: 15, ProcessOrder: 1},
				{StepName: "Breakfast", StepTime: 25, ProcessOrder: 2},
			},
			expected: "07:25:00",
		},
		{
			name:          "long plan wraps more than a full day",
			departureTime: "06:00:00",
			steps: []planentity.Step{
				{StepName: "A", StepTime: 720, ProcessOrder: 1},
				{StepName: "B", StepTime: 720, ProcessOrder: 2},
				{StepName: "C", StepTime: 30, ProcessOrder: 3},
			},
			expected: "05:30:00",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeWakeUpTime(tt.departureTime, tt.steps)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestComputeWakeUpTime_OrderInvariance は入力の並び順に関わらず同じ結果になることを検証します。
// 合計減算分は加法の可換性により処理順に依存しません。
func TestComputeWakeUpTime_OrderInvariance(t *testing.T) {
	t.Parallel()

	ordered := []planentity.Step{
		{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
		{StepName: "Breakfast", StepTime: 25, ProcessOrder: 2},
		{StepName: "Dress", StepTime: 5, ProcessOrder: 3},
	}
	shuffled := []planentity.Step{
		{StepName: "Dress", StepTime: 5, ProcessOrder: 3},
		{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
		{StepName: "Breakfast", StepTime: 25, ProcessOrder: 2},
	}

	got1, err := ComputeWakeUpTime("08:00:00", ordered)
	require.NoError(t, err)
	got2, err := ComputeWakeUpTime("08:00:00", shuffled)
	require.NoError(t, err)

	assert.Equal(t, got1, got2, "result must not depend on input ordering")
	assert.Equal(t, "07:20:00", got1)
}

// TestComputeWakeUpTime_DoesNotMutateInput は引数のスライスが並べ替えられないことを検証します。
func TestComputeWakeUpTime_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	steps := []planentity.Step{
		{StepName: "Dress", StepTime: 5, ProcessOrder: 2},
		{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
	}

	_, err := ComputeWakeUpTime("08:00:00", steps)
	require.NoError(t, err)

	assert.Equal(t, 2, steps[0].ProcessOrder, "input slice must not be reordered")
	assert.Equal(t, 1, steps[1].ProcessOrder, "input slice must not be reordered")
}

// TestComputeWakeUpTime_InvalidFormat は時刻フォーマット不正時にErrInvalidTimeFormatを返すことを検証します。
func TestComputeWakeUpTime_InvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		departureTime string
	}{
		{"missing seconds", "08:00"},
		{"not a time", "tomorrow"},
		{"empty string", ""},
		{"out of range hour", "25:00:00"},
		{"12-hour clock suffix", "08:00:00 AM"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeWakeUpTime(tt.departureTime, []planentity.Step{
				{StepName: "Shower", StepTime: 10, ProcessOrder: 1},
			})

			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}
