package handler

import (
	"fmt"

	"agenda/src-cli/metric"
	"agenda/src-cli/utils"
)

func Stats(as *utils.AppState) {
	id := "stats"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "stats",
		Description: "Dump the session metrics in Prometheus text format.",
	})
	as.AddAppCmdHandler(id, statsHandler(as))
}

func statsHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		if err := metric.Dump(as.Out); err != nil {
			return fmt.Errorf("statsHandler: %w", err)
		}
		return nil
	}
}
