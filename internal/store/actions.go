package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"sixcities/internal/client"
	"sixcities/internal/domain"
	"sixcities/internal/token"
)

// Actions is the async action layer: one method per network operation, each
// producing the pending / fulfilled / rejected lifecycle against the store.
//
// Failure routing: when the response carries a body recognizable under the
// backend error contract, the rejection is "handled" — the typed server
// error lands in the error slice and the method returns nil. Any other
// failure still settles the loading flags but is returned to the caller
// unconverted; absorbing it here would hide transport bugs behind the same
// surface as expected backend errors.
type Actions struct {
	api    *client.Client
	store  *Store
	tokens token.Store
}

func NewActions(api *client.Client, st *Store, tokens token.Store) *Actions {
	return &Actions{api: api, store: st, tokens: tokens}
}

type commentBody struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FetchAllOffers loads the full catalog. Every failure is reported as a
// common error; this operation never returns one to the caller.
func (a *Actions) FetchAllOffers(ctx context.Context) error {
	a.store.offersRequested()

	var offers []domain.Offer
	if err := a.api.Get(ctx, "/offers", &offers); err != nil {
		a.store.offersFailed()
		a.store.setServerError(commonError(err))
		return nil
	}
	a.store.offersLoaded(offers)
	return nil
}

// FetchOffer loads the detail, comments and nearby offers for one listing
// with three parallel requests. The operation is all-or-nothing: the first
// failure cancels the rest and the whole fetch is treated as failed.
// A recognizable not-found body becomes a handled common error; anything
// else is returned to the caller.
func (a *Actions) FetchOffer(ctx context.Context, id string) error {
	a.store.offerRequested()

	var (
		detail   domain.OfferDetail
		comments []domain.Comment
		nearby   []domain.Offer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.api.Get(gctx, "/offers/"+url.PathEscape(id), &detail)
	})
	g.Go(func() error {
		return a.api.Get(gctx, "/comments/"+url.PathEscape(id), &comments)
	})
	g.Go(func() error {
		return a.api.Get(gctx, "/offers/"+url.PathEscape(id)+"/nearby", &nearby)
	})

	if err := g.Wait(); err != nil {
		a.store.offerFailed()
		var se *client.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			if payload, ok := client.ParseServerError(se); ok {
				a.store.setServerError(payload)
				return nil
			}
		}
		return err
	}

	a.store.offerLoaded(&detail, comments, nearby)
	return nil
}

// SubmitComment posts a review for the offer and appends the created comment
// on success. Validation failures land in the error slice.
func (a *Actions) SubmitComment(ctx context.Context, offerID, text string, rating int) error {
	var created domain.Comment
	err := a.api.Post(ctx, "/comments/"+url.PathEscape(offerID), commentBody{Comment: text, Rating: rating}, &created)
	if err != nil {
		return a.rejectWithBody(err)
	}
	a.store.commentAdded(created)
	return nil
}

// FetchFavorites replaces the favorites collection wholesale.
func (a *Actions) FetchFavorites(ctx context.Context) error {
	var offers []domain.Offer
	if err := a.api.Get(ctx, "/favorite", &offers); err != nil {
		return a.rejectWithBody(err)
	}
	a.store.favoritesLoaded(offers)
	return nil
}

// ToggleFavorite sets the offer's favorite status on the server and
// propagates the settled flag to every collection holding a copy.
func (a *Actions) ToggleFavorite(ctx context.Context, offerID string, isFavorite bool) error {
	status := 0
	if isFavorite {
		status = 1
	}
	path := fmt.Sprintf("/favorite/%s/%d", url.PathEscape(offerID), status)

	var updated domain.Offer
	if err := a.api.Post(ctx, path, nil, &updated); err != nil {
		return a.rejectWithBody(err)
	}
	a.store.favoriteUpdated(updated)
	return nil
}

// VerifySession asks the server whether the persisted token still names a
// live session. Any failure maps to Unauthorized; the underlying error is
// returned so callers can log it, a 401 here is the expected anonymous path.
func (a *Actions) VerifySession(ctx context.Context) error {
	a.store.ResetError()

	var info domain.UserInfo
	if err := a.api.Get(ctx, "/login", &info); err != nil {
		a.store.sessionRejected()
		return err
	}
	a.store.sessionConfirmed(&info)
	return nil
}

// Login exchanges credentials for a profile and a token. The token is
// persisted as a side effect. A 400 with a recognizable body is a handled
// validation failure; other failures leave the session untouched and are
// returned.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	var info domain.UserInfo
	err := a.api.Post(ctx, "/login", loginBody{Email: email, Password: password}, &info)
	if err != nil {
		var se *client.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusBadRequest {
			if payload, ok := client.ParseServerError(se); ok {
				a.store.sessionRejected()
				a.store.setServerError(payload)
				return nil
			}
		}
		return err
	}

	if err := a.tokens.Save(info.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	a.store.sessionConfirmed(&info)
	return nil
}

// Logout ends the server session, clears the persisted token and resets
// every favorite flag the store holds.
func (a *Actions) Logout(ctx context.Context) error {
	if err := a.api.Delete(ctx, "/logout"); err != nil {
		return err
	}
	if err := a.tokens.Drop(); err != nil {
		return fmt.Errorf("drop token: %w", err)
	}
	a.store.sessionRejected()
	a.store.favoritesReset()
	return nil
}

// rejectWithBody converts a failure into a handled server error when the
// response body matches the error contract, otherwise hands it back.
func (a *Actions) rejectWithBody(err error) error {
	var se *client.StatusError
	if errors.As(err, &se) {
		if payload, ok := client.ParseServerError(se); ok {
			a.store.setServerError(payload)
			return nil
		}
	}
	return err
}

// commonError synthesizes the page-level error used when the catalog fetch
// fails for any reason, structured body or not.
func commonError(err error) *domain.ServerError {
	e := &domain.ServerError{
		ErrorType: domain.CommonError,
		Message:   err.Error(),
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		e.Status = se.StatusCode
	}
	return e
}
