// Package services contains application services for the UFood client.
// This file defines the authentication service: sign-in and sign-out against
// the API, registration, and the local persistence that lets a session
// survive a restart.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ufood/internal/client/client"
	"github.com/dmitrijs2005/ufood/internal/client/models"
	"github.com/dmitrijs2005/ufood/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ufood/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/ufood/internal/client/session"
	"github.com/dmitrijs2005/ufood/internal/common"
	"github.com/dmitrijs2005/ufood/internal/dbx"
	"github.com/dmitrijs2005/ufood/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when the token carries no readable expiry.
const DefaultTokenTTL = 24 * time.Hour

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate, persist the token and user id, load the profile.
//   - Logout: invalidate the token remotely, then wipe local session data.
//   - Register: create an account, sign in and create the default favorite list.
//   - Restore: rebuild the session from local data at startup.
//   - Profile: refresh the profile of the signed-in user.
//   - SelectFavoriteList / SelectedFavoriteList: remember the current list.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	SelectFavoriteList(ctx context.Context, listID string) error
	SelectedFavoriteList(ctx context.Context) (string, error)
}

// Options tune an AuthService. Zero values are replaced by defaults.
type Options struct {
	TokenTTL time.Duration
	Logger   logging.Logger
	Now      func() time.Time
}

// authService is the concrete AuthService backed by the remote API, the
// in-memory session and a local SQL database.
type authService struct {
	api     client.AuthAPI
	session *session.Session
	db      *sql.DB
	ttl     time.Duration
	log     logging.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API, session and DB.
func NewAuthService(api client.AuthAPI, sess *session.Session, db *sql.DB, opts Options) AuthService {
	a := &authService{
		api:     api,
		session: sess,
		db:      db,
		ttl:     opts.TokenTTL,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if a.ttl <= 0 {
		a.ttl = DefaultTokenTTL
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) getTokensRepo(db dbx.DBTX) tokens.Repository {
	return tokens.NewSQLiteRepository(db)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// token is only stored, never trusted locally.
func tokenExpiry(token string, now time.Time, ttl time.Duration) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return now.Add(ttl)
}

// Login signs in, persists the token with its expiry together with the user
// id, and loads the profile into the session.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	res, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	expiresAt := tokenExpiry(res.Token, a.now(), a.ttl)
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := a.getTokensRepo(tx).Save(ctx, res.Token, expiresAt); err != nil {
			return err
		}
		meta := a.getMetadataRepo(tx)
		prev, err := meta.Get(ctx, common.MetaUserID)
		if err != nil {
			return err
		}
		// data left behind by another account is dropped
		if string(prev) != res.ID {
			if err := meta.Clear(ctx); err != nil {
				return err
			}
		}
		return meta.Set(ctx, common.MetaUserID, []byte(res.ID))
	})
	if err != nil {
		a.session.ClearSession()
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	profile, err := a.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.User{ID: res.ID, Name: res.Name, Email: res.Email}
		a.session.SetSession(profile)
	}
	return profile, nil
}

// Logout invalidates the token remotely and then removes the token and all
// user-scoped metadata in one transaction.
// A remote failure leaves everything in place.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := a.getTokensRepo(tx).Delete(ctx); err != nil {
			return err
		}
		return a.getMetadataRepo(tx).Clear(ctx)
	})
	a.session.ClearSession()
	if err != nil {
		return fmt.Errorf("local data clearing error: %w", err)
	}
	return nil
}

// Register creates the account, signs in with the same credentials and
// creates the default favorite list. The list is best effort: a failure is
// logged and the registration still succeeds.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	u, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	if _, err := a.Login(ctx, email, password); err != nil {
		return u, fmt.Errorf("sign-in after register error: %w", err)
	}

	list, err := a.api.CreateDefaultFavoriteList(ctx)
	if err != nil || list == nil {
		a.log.Warn(ctx, "default favorite list not created", "error", err)
		return u, nil
	}
	if err := a.SelectFavoriteList(ctx, list.ID); err != nil {
		a.log.Warn(ctx, "default favorite list not selected", "list_id", list.ID, "error", err)
	}
	return u, nil
}

// Restore loads a stored, unexpired token into the session together with the
// cached profile. It returns client.ErrLocalDataNotAvailable when there is
// nothing to restore.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	token, err := a.getTokensRepo(a.db).Load(ctx, a.now())
	if err != nil {
		return nil, fmt.Errorf("token loading error: %w", err)
	}
	if token == "" {
		// an absent or expired token leaves no user-scoped data behind
		if err := a.getMetadataRepo(a.db).Clear(ctx); err != nil {
			a.log.Warn(ctx, "stale local data not cleared", "error", err)
		}
		return nil, client.ErrLocalDataNotAvailable
	}

	userID, err := a.getMetadataRepo(a.db).Get(ctx, common.MetaUserID)
	if err != nil {
		return nil, fmt.Errorf("user id loading error: %w", err)
	}
	a.session.SetToken(token, string(userID))

	profile := a.cachedProfile(ctx)
	if profile != nil {
		a.session.SetSession(profile)
	}
	return profile, nil
}

// Profile fetches the profile from the API, caches it and stores it in the
// session. When the API gives nothing the cached copy is used instead.
func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	u, err := a.api.GetUserInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile error: %w", err)
	}

	if u == nil {
		cached := a.cachedProfile(ctx)
		if cached != nil {
			a.session.SetSession(cached)
		}
		return cached, nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("profile encoding error: %w", err)
	}
	if err := a.getMetadataRepo(a.db).Set(ctx, common.MetaUserProfile, raw); err != nil {
		a.log.Warn(ctx, "profile not cached", "error", err)
	}
	a.session.SetSession(u)
	return u, nil
}

// cachedProfile returns the stored profile of the session user, or nil when
// none is stored, it cannot be read or it belongs to someone else.
func (a *authService) cachedProfile(ctx context.Context) *models.User {
	raw, err := a.getMetadataRepo(a.db).Get(ctx, common.MetaUserProfile)
	if err != nil {
		a.log.Warn(ctx, "cached profile unavailable", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		a.log.Warn(ctx, "cached profile is corrupt", "error", err)
		return nil
	}
	if u.ID != a.session.UserID() {
		return nil
	}
	return &u
}

// SelectFavoriteList remembers listID; an empty id forgets the selection.
func (a *authService) SelectFavoriteList(ctx context.Context, listID string) error {
	repo := a.getMetadataRepo(a.db)
	if listID == "" {
		return repo.Delete(ctx, common.MetaSelectedFavoriteList)
	}
	return repo.Set(ctx, common.MetaSelectedFavoriteList, []byte(listID))
}

// SelectedFavoriteList returns the remembered list id, or "".
func (a *authService) SelectedFavoriteList(ctx context.Context) (string, error) {
	v, err := a.getMetadataRepo(a.db).Get(ctx, common.MetaSelectedFavoriteList)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
