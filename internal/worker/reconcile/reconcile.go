// Package reconcile は予算合計の整合性修復ジョブを提供する。
// trips.budget_totalは旅程アイテムの書き込みと同一トランザクションで
// 再計算されるため通常はずれないが、手動のデータ操作や障害からの復旧で
// 乖離した場合に備え、アイテムのコスト合計から定期的に再計算して修復する。
package reconcile

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Executor はSQLのExecContextを抽象化するインターフェース。
// *sql.DB や *sql.Tx を受け付けることができる。
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// RepairRecorder は修復件数メトリクスの記録に必要なインターフェース。
type RepairRecorder interface {
	RecordBudgetRepaired(count int)
}

// ReconcileJob は予算合計の整合性修復ジョブ。
// 冪等: 乖離がない場合は何も更新しない。
type ReconcileJob struct {
	db        Executor
	collector RepairRecorder
	logger    *slog.Logger
}

// NewReconcileJob は新しいReconcileJobを生成する。
func NewReconcileJob(db Executor, collector RepairRecorder, logger *slog.Logger) *ReconcileJob {
	return &ReconcileJob{
		db:        db,
		collector: collector,
		logger:    logger,
	}
}

// Run は全旅行の予算合計を旅程アイテムのコスト合計と突き合わせ、
// 乖離している行のみを修復する。修復件数をメトリクスに記録する。
func (j *ReconcileJob) Run(ctx context.Context) error {
	start := time.Now()

	// アイテムを持たない旅行も合計0として対象に含める
	query := `
		UPDATE trips
		SET budget_total = agg.total, updated_at = now()
		FROM (
			SELECT t.id, COALESCE(sum(i.cost), 0) AS total
			FROM trips t
			LEFT JOIN itinerary_items i ON i.trip_id = t.id
			GROUP BY t.id
		) agg
		WHERE trips.id = agg.id AND trips.budget_total <> agg.total`

	result, err := j.db.ExecContext(ctx, query)
	if err != nil {
		j.logger.Error("予算整合性ジョブの実行に失敗しました",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("予算整合性ジョブの実行に失敗: %w", err)
	}

	repairedCount, err := result.RowsAffected()
	if err != nil {
		j.logger.Error("修復件数の取得に失敗しました",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("修復件数の取得に失敗: %w", err)
	}

	j.collector.RecordBudgetRepaired(int(repairedCount))

	duration := time.Since(start)
	j.logger.Info("予算整合性ジョブが完了しました",
		slog.Int64("repaired_count", repairedCount),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}
