package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/pluqqy/drivepad/pkg/models"
)

const (
	callbackPath     = "/callback"
	defaultListen    = "127.0.0.1:0"
	defaultTimeout   = 5 * time.Minute
	signedInResponse = "Signed in. You can close this window and return to drivepad.\n"
)

// OAuthAuthenticator runs the installed-app OAuth flow with a loopback
// redirect. The token is kept in memory only.
type OAuthAuthenticator struct {
	Config *oauth2.Config

	// OpenURL presents the consent URL to the user. When nil the URL is only
	// logged.
	OpenURL func(url string) error

	// ListenAddr is the loopback address for the redirect listener.
	ListenAddr string
	Timeout    time.Duration

	// UserinfoOptions are appended when building the userinfo client.
	UserinfoOptions []option.ClientOption
}

// NewOAuthAuthenticator loads the client secret named in settings
func NewOAuthAuthenticator(settings *models.Settings) (*OAuthAuthenticator, error) {
	secret, err := os.ReadFile(settings.Auth.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read client secret %s: %w", ErrAuthFailure, settings.Auth.CredentialsFile, err)
	}

	config, err := google.ConfigFromJSON(secret, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse client secret: %w", ErrAuthFailure, err)
	}

	a := &OAuthAuthenticator{
		Config:  config,
		Timeout: time.Duration(settings.Auth.TimeoutSeconds) * time.Second,
	}
	if settings.Auth.OpenBrowser {
		a.OpenURL = OpenBrowser
	}
	return a, nil
}

type callbackResult struct {
	code string
	err  error
}

func (a *OAuthAuthenticator) Authenticate(ctx context.Context) (*models.Account, error) {
	addr := a.ListenAddr
	if addr == "" {
		addr = defaultListen
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start redirect listener: %w", ErrAuthFailure, err)
	}

	config := *a.Config
	config.RedirectURL = "http://" + listener.Addr().String() + callbackPath

	state, err := randomState()
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}
	verifier := oauth2.GenerateVerifier()

	results := make(chan callbackResult, 1)
	server := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go server.Serve(listener)
	defer server.Close()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	log.Infof("sign-in required, visit %s", authURL)
	if a.OpenURL != nil {
		if err := a.OpenURL(authURL); err != nil {
			log.Warnf("could not open browser: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var result callbackResult
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: waiting for consent: %w", ErrAuthFailure, ctx.Err())
	case result = <-results:
	}
	if result.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailure, result.err)
	}

	token, err := config.Exchange(ctx, result.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %w", ErrAuthFailure, err)
	}

	// The refreshing source outlives this call, so it must not carry ctx.
	source := config.TokenSource(context.Background(), token)

	email, err := a.fetchEmail(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch profile: %w", ErrAuthFailure, err)
	}

	return &models.Account{Email: email, Token: token, Source: source}, nil
}

func (a *OAuthAuthenticator) fetchEmail(ctx context.Context, source oauth2.TokenSource) (string, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(source)}, a.UserinfoOptions...)

	service, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return "", err
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return info.Email, nil
}

func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	deliver := func(r callbackResult) {
		select {
		case results <- r:
		default:
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		switch {
		case query.Get("state") != state:
			// Not our redirect; keep waiting for the real one
			log.Warnf("ignoring redirect with unexpected state from %s", r.RemoteAddr)
			http.Error(w, "state mismatch", http.StatusBadRequest)
		case query.Get("error") != "":
			http.Error(w, "sign-in was not completed", http.StatusBadRequest)
			deliver(callbackResult{err: fmt.Errorf("consent denied: %s", query.Get("error"))})
		case query.Get("code") == "":
			http.Error(w, "missing code", http.StatusBadRequest)
			deliver(callbackResult{err: errors.New("redirect carried no code")})
		default:
			fmt.Fprint(w, signedInResponse)
			deliver(callbackResult{code: query.Get("code")})
		}
	})
	return mux
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// OpenBrowser opens url with the platform's default handler
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	go cmd.Wait()
	return nil
}
