package pipeline

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// RunStages executes stages in order, recording timing and stopping on the
// first fatal error. Each successful stage advances the run's state; a fatal
// error moves it to StateFailed and is also stored on the report.
func RunStages(rs *RunState, stages []StageDef) error {
	for _, st := range stages {
		t0 := time.Now()
		err := st.Fn(rs)
		dur := time.Since(t0)
		rs.Report.StageDurations[st.Name] = dur

		if err != nil {
			rs.State = StateFailed
			rs.Report.Fatal = err
			rs.Report.Finish()
			slog.Error("Stage failed",
				logfields.RunID(rs.Report.RunID),
				logfields.Stage(string(st.Name)),
				logfields.Error(err))
			return err
		}

		rs.State = st.Next
		slog.Debug("Stage complete",
			logfields.RunID(rs.Report.RunID),
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())))
	}

	rs.State = StateDone
	rs.Report.Finish()
	return nil
}
