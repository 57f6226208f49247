package utils

import (
	"io"
	"os"
	"sync"
	"time"

	"agenda/src-cli/scheduler"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Everything a command handler needs, wired once at startup:
// - Scheduler: the owned event collection
// - appCmdInfo: command metadata, rendered by the help command
// - appCmdHandler: command id -> handler, looked up by the input loop
type AppState struct {
	Config      *Config
	When        *when.Parser
	Scheduler   *scheduler.Scheduler
	MetricChans *Metric

	// where the input loop reads from and handlers write to; swapped for
	// buffers in tests
	In  io.Reader
	Out io.Writer

	appCmdInfo    map[string]*CommandInfo
	appCmdHandler map[string]func(args string) error

	AppCloseSignalChan chan os.Signal

	mu            sync.Mutex
	shutdownChans []*chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{}

	as.appCmdInfo = make(map[string]*CommandInfo)
	as.appCmdHandler = make(map[string]func(args string) error)

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	as.Scheduler = scheduler.New().WithClock(as.Now)
	as.MetricChans = NewMetric()

	as.In = os.Stdin
	as.Out = os.Stdout

	as.AppCloseSignalChan = make(chan os.Signal, 1)

	return as
}

// The current instant in the configured location. This is the single
// wall-clock the scheduler and every created event run on.
func (as *AppState) Now() time.Time {
	return time.Now().In(as.Config.GetLocation())
}

func (as *AppState) AddAppCmdInfo(id string, info *CommandInfo) {
	as.appCmdInfo[id] = info
}

func (as *AppState) AddAppCmdHandler(id string, handler func(args string) error) {
	as.appCmdHandler[id] = handler
}

func (as *AppState) GetAppCmdHandler(id string) (func(args string) error, bool) {
	handler, ok := as.appCmdHandler[id]
	return handler, ok
}

func (as *AppState) IterateAppCmdInfo(fn func(id string, info *CommandInfo)) {
	for id, info := range as.appCmdInfo {
		fn(id, info)
	}
}

// Hand out a channel that gets closed on GracefulShutdown; every metric
// feeder goroutine holds one.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	ch := make(chan struct{})
	as.mu.Lock()
	as.shutdownChans = append(as.shutdownChans, &ch)
	as.mu.Unlock()
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.mu.Lock()
	defer as.mu.Unlock()
	for _, ch := range as.shutdownChans {
		close(*ch)
	}
	as.shutdownChans = nil
}
