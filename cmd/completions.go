package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
)

// completeAgendaIDs returns a completion function for agenda item ids.
func completeAgendaIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	rc := runtimeOf(cmd)
	if len(args) > 0 || rc == nil || rc.Store == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, it := range rc.Store.Agenda.Get() {
		id := output.ShortID(it.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+it.StartTime+" "+it.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeTransactionIDs returns a completion function for transaction ids.
func completeTransactionIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	rc := runtimeOf(cmd)
	if len(args) > 0 || rc == nil || rc.Store == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, tx := range rc.Store.Transactions.Get() {
		id := output.ShortID(tx.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+tx.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeDomains completes a domain name.
func completeDomains(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, d := range model.Domains {
		if strings.HasPrefix(string(d), toComplete) {
			completions = append(completions, string(d)+"\t"+d.Title())
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeValues returns a completion function for a fixed set of values.
func completeValues(values ...string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var completions []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				completions = append(completions, v)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
