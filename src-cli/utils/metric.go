package utils

type Metric struct {
	EventsTotal    chan float64
	SchedulerRead  chan float64
	SchedulerWrite chan float64
}

func NewMetric() *Metric {
	return &Metric{
		EventsTotal:    make(chan float64),
		SchedulerRead:  make(chan float64),
		SchedulerWrite: make(chan float64),
	}
}

// Non-blocking sends: a sample is dropped when no feeder is listening,
// which keeps handlers usable without the metric goroutines running.

func (m *Metric) ObserveEventsTotal(total float64) {
	select {
	case m.EventsTotal <- total:
	default:
	}
}

func (m *Metric) ObserveSchedulerRead(microsec float64) {
	select {
	case m.SchedulerRead <- microsec:
	default:
	}
}

func (m *Metric) ObserveSchedulerWrite(microsec float64) {
	select {
	case m.SchedulerWrite <- microsec:
	default:
	}
}
