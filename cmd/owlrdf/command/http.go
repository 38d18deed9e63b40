package command

import (
	"net"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlrdf/clog"
	ohttp "github.com/cayleygraph/owlrdf/internal/http"
)

const (
	KeyHTTPHost    = "http.host"
	KeyHTTPTimeout = "http.timeout"
	KeyHTTPMaxBody = "http.max_body"
	KeyHTTPCache   = "http.cache_size"
)

func NewHttpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the translation API on the given host and port.",
		PreRun: func(cmd *cobra.Command, args []string) {
			bindTranslateFlags(cmd)
			viper.BindPFlag(KeyHTTPHost, cmd.Flags().Lookup("host"))
			viper.BindPFlag(KeyHTTPTimeout, cmd.Flags().Lookup("timeout"))
			viper.BindPFlag(KeyHTTPMaxBody, cmd.Flags().Lookup("max_body"))
			viper.BindPFlag(KeyHTTPCache, cmd.Flags().Lookup("cache_size"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sessionConfig()
			if err != nil {
				return err
			}
			host := viper.GetString(KeyHTTPHost)
			if h, port, err := net.SplitHostPort(host); err == nil && h == "" {
				clog.Infof("listening on all interfaces, port %s", port)
			}
			return ohttp.Serve(host, &ohttp.Config{
				Translate: cfg,
				Timeout:   viper.GetDuration(KeyHTTPTimeout),
				MaxBody:   viper.GetInt64(KeyHTTPMaxBody),
				CacheSize: viper.GetInt(KeyHTTPCache),
			})
		},
	}
	cmd.Flags().String("host", "127.0.0.1:64211", "host:port to listen on")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual translation times out")
	cmd.Flags().Int64("max_body", 64<<20, "maximal request body size in bytes (0 means no limit)")
	cmd.Flags().Int("cache_size", 64, "number of translation responses cached for repeated documents (0 disables the cache)")
	registerTranslateFlags(cmd)
	return cmd
}
