package main

import (
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/config"
	"github.com/glacierdata/lakecatsrv/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the catalog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.CreateNewServer()
		if err != nil {
			return err
		}
		s.MountHandlers()

		addr := config.Config().Address
		log.Info().Str("address", addr).Msg("starting lakecatsrv")
		return http.ListenAndServe(addr, s.Router)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
