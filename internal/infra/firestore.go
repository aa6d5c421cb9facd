package infra

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"linderopos/internal/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// localKeyFile is the conventional development key location.
const localKeyFile = "keys/serviceAccountKey.json"

var (
	fsOnce   sync.Once
	fsClient *firestore.Client
	fsErr    error
)

// NewFirestore builds the process-wide Firestore client. The initializer is
// guarded so repeated calls return the same handle; callers receive it
// explicitly instead of reading a package global.
func NewFirestore(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	fsOnce.Do(func() {
		fsClient, fsErr = connect(ctx, cfg)
	})
	return fsClient, fsErr
}

// credentialSource is one step of the fallback chain. resolve returns the
// client option and true when the source is applicable; false means try the
// next source.
type credentialSource struct {
	name    string
	resolve func() (option.ClientOption, bool)
}

// resolveCredentials walks the chain in priority order: inline service
// account JSON, then an explicit key file path, then the local development
// key file. A nil option means fall through to application default
// credentials (the last resort, handled by the SDK itself).
func resolveCredentials(cfg *config.Config) (option.ClientOption, string) {
	sources := []credentialSource{
		{"inline service account JSON", func() (option.ClientOption, bool) {
			if cfg.ServiceAccountJSON == "" || !json.Valid([]byte(cfg.ServiceAccountJSON)) {
				return nil, false
			}
			return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), true
		}},
		{"GOOGLE_APPLICATION_CREDENTIALS key file", func() (option.ClientOption, bool) {
			if cfg.CredentialsFile == "" {
				return nil, false
			}
			if _, err := os.Stat(cfg.CredentialsFile); err != nil {
				return nil, false
			}
			return option.WithCredentialsFile(cfg.CredentialsFile), true
		}},
		{"local key file", func() (option.ClientOption, bool) {
			if _, err := os.Stat(localKeyFile); err != nil {
				return nil, false
			}
			return option.WithCredentialsFile(localKeyFile), true
		}},
	}

	for _, src := range sources {
		if opt, ok := src.resolve(); ok {
			return opt, src.name
		}
	}
	return nil, "application default credentials"
}

func connect(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	opt, source := resolveCredentials(cfg)
	log.Info().Str("source", source).Msg("firestore credentials resolved")

	var fbCfg *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	var app *firebase.App
	var err error
	if opt != nil {
		app, err = firebase.NewApp(ctx, fbCfg, opt)
	} else {
		app, err = firebase.NewApp(ctx, fbCfg)
	}
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}
