// Package domain はscheduleフィーチャーのドメインロジックを提供します。
package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	planentity "wakeup_backend/internal/feature/plan/domain/entity"
)

// TimeLayout は出発時刻・起床時刻の24時間制フォーマットです。
const TimeLayout = "15:04:05"

// ErrInvalidTimeFormat is returned when a wall-clock string does not parse as HH:MM:SS.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ComputeWakeUpTime は出発時刻からプランの全ステップの所要時間を引いて起床時刻を導出します。
// ステップはprocess_orderの降順（出発直前に行うステップから）に処理します。
// 起床後に最初に行うステップがorder=1なので、逆算では最後のステップから巻き戻します。
// 減算が00:00:00を跨いだ場合は前日の時刻に折り返します（日付は追跡しません）。
// 副作用のない純粋関数です。
func ComputeWakeUpTime(departureTime string, steps []planentity.Step) (string, error) {
	dep, err := time.Parse(TimeLayout, departureTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, departureTime)
	}

	// 入力順に依存しないよう、コピーをソートする
	sorted := make([]planentity.Step, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProcessOrder > sorted[j].ProcessOrder
	})

	for _, s := range sorted {
		dep = dep.Add(-time.Duration(s.StepTime) * time.Minute)
	}

	return dep.Format(TimeLayout), nil
}
