package metric

import (
	"log/slog"
	"time"

	"agenda/src-cli/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func eventsTotal(as *utils.AppState) {
	eventsTotal := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agenda_events_total",
		Help: "The number of events currently owned by the scheduler",
	})
	good := true
	if err := prometheus.Register(eventsTotal); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register agenda_events_total metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("agenda_events_total metric registered")
		eventsTotal.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(eventsTotal) {
				case true:
					slog.Debug("agenda_events_total metric unregistered")
				case false:
					slog.Warn("agenda_events_total metric not registered")
				}
				return
			case total := <-as.MetricChans.EventsTotal:
				eventsTotal.Set(total)
			}
		}
	}()
}

func schedulerRead(as *utils.AppState, clearTickerInterval *time.Duration) {
	schedulerRead := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agenda_scheduler_read_microsec",
		Help: "The latency of the last scheduler query in microseconds",
	})
	good := true
	if err := prometheus.Register(schedulerRead); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register agenda_scheduler_read_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("agenda_scheduler_read_microsec metric registered")
		schedulerRead.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(schedulerRead) {
				case true:
					slog.Debug("agenda_scheduler_read_microsec metric unregistered")
				case false:
					slog.Warn("agenda_scheduler_read_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.SchedulerRead:
				schedulerRead.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				schedulerRead.Set(0)
			}
		}
	}()
}

func schedulerWrite(as *utils.AppState, clearTickerInterval *time.Duration) {
	schedulerWrite := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agenda_scheduler_write_microsec",
		Help: "The latency of the last scheduler mutation in microseconds",
	})
	good := true
	if err := prometheus.Register(schedulerWrite); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register agenda_scheduler_write_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("agenda_scheduler_write_microsec metric registered")
		schedulerWrite.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(schedulerWrite) {
				case true:
					slog.Debug("agenda_scheduler_write_microsec metric unregistered")
				case false:
					slog.Warn("agenda_scheduler_write_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.SchedulerWrite:
				schedulerWrite.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				schedulerWrite.Set(0)
			}
		}
	}()
}

// Init registers all the gauges and spawns their feeder goroutines. They
// stop when the AppState's graceful-shutdown channels close.
func Init(as *utils.AppState) {
	clearTickerInterval := 30 * time.Second
	eventsTotal(as)
	schedulerRead(as, &clearTickerInterval)
	schedulerWrite(as, &clearTickerInterval)
}
