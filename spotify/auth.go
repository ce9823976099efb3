package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/streambinder/spotilink/config"
	"github.com/streambinder/spotilink/util/cmd"
	"github.com/thanhpk/randstr"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// Processor is handed the authorization URL the user has to visit
type Processor func(url string) error

// BrowserProcessor opens the authorization URL in the default browser,
// printing it out for manual copy-paste whenever that is not possible
func BrowserProcessor(url string) error {
	if err := cmd.Browser(url); err != nil {
		fmt.Println("open the following URL to authenticate:", url)
	}
	return nil
}

// Authenticator returns the OAuth2 authenticator for the configured application
func Authenticator(cfg *config.Config) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.RedirectURI),
		spotifyauth.WithScopes(spotifyauth.ScopePlaylistModifyPrivate),
	)
}

// Authenticate runs the authorization code flow: it serves the redirect
// URI locally and waits for the callback carrying the authorization code
func Authenticate(ctx context.Context, cfg *config.Config, processor Processor) (*Client, error) {
	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("redirect uri: %w", err)
	}
	if len(redirect.Host) == 0 {
		return nil, errors.New("redirect uri: missing host")
	}

	var (
		auth     = Authenticator(cfg)
		state    = randstr.Hex(16)
		tokens   = make(chan *oauth2.Token, 1)
		failures = make(chan error, 1)
		mux      = http.NewServeMux()
		path     = redirect.Path
	)
	if len(path) == 0 {
		path = "/"
	}
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		// anything else than the authorization outcome (e.g. favicon) is not for us
		if query := r.URL.Query(); !query.Has("code") && !query.Has("error") {
			http.NotFound(w, r)
			return
		}

		token, err := auth.Token(ctx, state, r)
		if err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			select {
			case failures <- err:
			default:
			}
			return
		}
		fmt.Fprintln(w, "authentication completed, you can close this window")
		select {
		case tokens <- token:
		default:
		}
	})

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return nil, err
	}
	server := &http.Server{Handler: mux}
	go server.Serve(listener)
	defer server.Shutdown(context.Background())

	if err := processor(auth.AuthURL(state)); err != nil {
		return nil, err
	}

	select {
	case token := <-tokens:
		return New(auth.Client(ctx, token)), nil
	case err := <-failures:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
