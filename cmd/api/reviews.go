package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tastelog/internal/domain/reviews"
	"tastelog/internal/validate"

	"github.com/go-chi/chi/v5"
)

type reviewPayload struct {
	Score      int    `json:"score"`
	Name       string `json:"name"`
	TastedOn   string `json:"tasted_on"` // YYYY-MM-DD, defaults to today
	CategoryID *int64 `json:"category_id"`
	Count      int    `json:"count"`
}

// applyTo overlays the payload on a review draft. The date stays at the
// draft's value when the payload leaves it empty.
func (p *reviewPayload) applyTo(review *reviews.Review) error {
	review.Score = p.Score
	review.Name = p.Name
	review.CategoryID = p.CategoryID
	review.Count = p.Count

	if p.TastedOn != "" {
		t, err := time.Parse("2006-01-02", p.TastedOn)
		if err != nil {
			return errors.New("tasted_on must be a YYYY-MM-DD date")
		}
		review.TastedOn = t
	}
	return nil
}

// createReviewHandler godoc
//
//	@Summary		Create Review
//	@Description	Records a new tasting entry. Every broken field constraint is reported at once.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		reviewPayload	true	"Review payload"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	error	"Bad Request"
//	@Failure		422		{object}	error	"Validation failed"
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload reviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := reviews.New()
	if err := payload.applyTo(review); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			app.validationFailedResponse(w, r, verr)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, review)
}

// searchReviewsHandler godoc
//
//	@Summary		Search Reviews
//	@Description	Lists reviews joined with their category name, ordered by review name. The q filter matches the start of the name, category name, score or count, case-insensitively.
//	@Tags			Reviews
//	@Produce		json
//	@Param			q	query		string	false	"Filter text"
//	@Success		200	{array}		reviews.ReviewWithCategory
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Router			/reviews [get]
func (app *application) searchReviewsHandler(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("q")

	results, err := app.store.Reviews.Search(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if results == nil {
		results = []reviews.ReviewWithCategory{}
	}

	app.jsonResponse(w, http.StatusOK, results)
}

// getReviewHandler godoc
//
//	@Summary		Get Review
//	@Tags			Reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	reviews.Review
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/reviews/{reviewID} [get]
func (app *application) getReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID)
	if err != nil {
		if errors.Is(err, reviews.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, review)
}

// updateReviewHandler godoc
//
//	@Summary		Update Review
//	@Description	Replaces a review's fields. The stored row keeps its date when the payload omits tasted_on.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int				true	"Review ID"
//	@Param			review		body		reviewPayload	true	"Review payload"
//	@Success		200			{object}	reviews.Review
//	@Failure		404			{object}	error	"Not Found"
//	@Failure		422			{object}	error	"Validation failed"
//	@Router			/reviews/{reviewID} [put]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload reviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID)
	if err != nil {
		if errors.Is(err, reviews.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := payload.applyTo(review); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Reviews.Update(r.Context(), review); err != nil {
		var verr *validate.ValidationError
		switch {
		case errors.As(err, &verr):
			app.validationFailedResponse(w, r, verr)
		case errors.Is(err, reviews.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusOK, review)
}

// deleteReviewHandler godoc
//
//	@Summary		Delete Review
//	@Tags			Reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	string	"review deleted"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID); err != nil {
		if errors.Is(err, reviews.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
