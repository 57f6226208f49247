package handler

import (
	"fmt"
	"sort"

	"agenda/src-cli/utils"
)

func Help(as *utils.AppState) {
	id := "help"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "help",
		Description: "Show this command overview.",
	})
	as.AddAppCmdHandler(id, helpHandler(as))
}

func helpHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		infos := make([]*utils.CommandInfo, 0)
		as.IterateAppCmdInfo(func(id string, info *utils.CommandInfo) {
			infos = append(infos, info)
		})
		sort.Slice(infos, func(i, j int) bool {
			return infos[i].Name < infos[j].Name
		})

		for _, info := range infos {
			fmt.Fprintf(as.Out, "%-10s %s\n", info.Name, info.Description)
			fmt.Fprintf(as.Out, "%-10s usage: %s\n", "", info.Usage)
		}
		fmt.Fprintln(as.Out, "quit       Leave the session.")
		return nil
	}
}
