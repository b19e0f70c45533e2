package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/storage"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a draft's page to the configured S3 bucket",
	Long: `Renders a draft and uploads it as <prefix>/<site>/index.html to the bucket
configured under s3 in .easylanding.yml. Credentials can come from the
config, EASYLANDING_S3__ACCESS_KEY / EASYLANDING_S3__SECRET_KEY, the AWS_*
variables, or a .env file.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().String("key", "", "draft to publish (defaults to draft_key from config)")
	publishCmd.Flags().String("site", "", "site name in the bucket (defaults to the draft key)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := storage.New(cfg.S3)
	if err != nil {
		return err
	}

	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	keyFlag, _ := cmd.Flags().GetString("key")
	key := draftKey(cfg, keyFlag)
	site, _ := cmd.Flags().GetString("site")
	if site == "" {
		site = key
	}

	d, err := s.drafts.Load(ctx, key)
	if err != nil {
		return err
	}
	printWarnings(d.Record)

	html := page.Generate(d.Record, pageOptions(cfg))
	url, err := client.Publish(ctx, site, []byte(html))
	if err != nil {
		return err
	}
	logHistory(ctx, s, history.ActionPublish, key, d.Record, html, url)

	fmt.Printf("Published %s to s3://%s/%s\n", key, client.Bucket(), client.ObjectKey(site))
	fmt.Printf("Public URL: %s\n", url)
	return nil
}
