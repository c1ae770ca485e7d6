package commands

import (
	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/spf13/cobra"
)

// NewReadCommands creates one command per read endpoint. Each passes its
// -p key=value pairs to the endpoint and renders the decoded response.
func NewReadCommands() []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(constants.ReadEndpoints))

	for _, endpoint := range constants.ReadEndpoints {
		commands = append(commands, newReadCommand(endpoint))
	}

	return commands
}

func newReadCommand(endpoint constants.Endpoint) *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   endpoint.Name,
		Short: endpoint.Short,
		Long:  endpoint.Short + " (GET " + endpoint.Path + ")",
		Example: "  jamendo " + endpoint.Name + " -p limit=5\n" +
			"  jamendo " + endpoint.Name + " -p tags=rock -p tags=pop -o json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := client.Get(cmd.Context(), endpoint.Path, params)
			if err != nil {
				return err
			}

			return outputResult(cmd, result)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, paramFlagUsage)

	return cmd
}
