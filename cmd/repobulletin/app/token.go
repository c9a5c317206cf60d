package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"repobulletin.shikanime.studio/internal/auth"
	"repobulletin.shikanime.studio/internal/bulletin/github"
	"repobulletin.shikanime.studio/internal/config"
)

// NewTokenCmd returns the command minting a session token for a GitHub user,
// for development against a running server.
func NewTokenCmd(cfg *config.Config) *cobra.Command {
	var (
		id  int64
		ttl time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token LOGIN",
		Short: "Mint a session token for a GitHub user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := cfg.GetJWTSecret()
			if len(secret) == 0 {
				return errors.New("JWT_SECRET is not set")
			}
			viewer := auth.Viewer{ID: id, Login: args[0]}
			if viewer.ID == 0 {
				var opts []github.ClientOption
				if token := cfg.GetGitHubToken(); token != "" {
					opts = append(opts, github.WithToken(token))
				}
				if u := cfg.GetGitHubAPIURL(); u != "" {
					opts = append(opts, github.WithBaseURL(u))
				}
				gh, err := github.NewClient(opts...)
				if err != nil {
					return err
				}
				identity, err := gh.ResolveIdentity(cmd.Context(), viewer.Login)
				if err != nil {
					return err
				}
				viewer = auth.Viewer{ID: identity.ID, Login: identity.Login}
			}
			if ttl <= 0 {
				ttl = cfg.GetTokenTTL()
			}
			token, err := auth.GenerateToken(viewer, secret, ttl)
			if err != nil {
				return fmt.Errorf("sign token failed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "GitHub user id; resolved from the login when omitted")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token validity. Falls back to TOKEN_TTL")
	return cmd
}
