package main

import (
	"errors"
	"net/http"
	"strconv"

	"tastelog/internal/domain/categories"
	"tastelog/internal/validate"

	"github.com/go-chi/chi/v5"
)

type categoryPayload struct {
	Name string `json:"name"`
}

// createCategoryHandler godoc
//
//	@Summary		Create Category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		categoryPayload	true	"Category payload"
//	@Success		201			{object}	categories.Category
//	@Failure		409			{object}	error	"Conflict"
//	@Failure		422			{object}	error	"Validation failed"
//	@Router			/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &categories.Category{Name: payload.Name}

	if err := app.store.Categories.Create(r.Context(), category); err != nil {
		var verr *validate.ValidationError
		switch {
		case errors.As(err, &verr):
			app.validationFailedResponse(w, r, verr)
		case errors.Is(err, categories.ErrConflict):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusCreated, category)
}

// listCategoriesHandler godoc
//
//	@Summary		List Categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		categories.Category
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Categories.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []categories.Category{}
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// getCategoryHandler godoc
//
//	@Summary		Get Category
//	@Tags			Categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	categories.Category
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/categories/{categoryID} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid category ID"))
		return
	}

	category, err := app.store.Categories.GetByID(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, category)
}

// updateCategoryHandler godoc
//
//	@Summary		Update Category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			categoryID	path		int				true	"Category ID"
//	@Param			category	body		categoryPayload	true	"Category payload"
//	@Success		200			{object}	categories.Category
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/categories/{categoryID} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid category ID"))
		return
	}

	var payload categoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &categories.Category{ID: categoryID, Name: payload.Name}

	if err := app.store.Categories.Update(r.Context(), category); err != nil {
		var verr *validate.ValidationError
		switch {
		case errors.As(err, &verr):
			app.validationFailedResponse(w, r, verr)
		case errors.Is(err, categories.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, categories.ErrConflict):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusOK, category)
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete Category
//	@Description	Deletes a category. Its reviews are kept and show up as "Undefined" afterwards.
//	@Tags			Categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	string	"category deleted"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/categories/{categoryID} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid category ID"))
		return
	}

	if err := app.store.Categories.Delete(r.Context(), categoryID); err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

// categoryTotalHandler godoc
//
//	@Summary		Category tasting total
//	@Description	Sums the times-tasted counter across all reviews in the category. 0 when the category has no reviews.
//	@Tags			Categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	map[string]int
//	@Failure		500			{object}	error	"Internal Server Error"
//	@Router			/categories/{categoryID}/total [get]
func (app *application) categoryTotalHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid category ID"))
		return
	}

	total, err := app.store.Reviews.TotalCountByCategory(r.Context(), categoryID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]int64{
		"category_id": categoryID,
		"total":       int64(total),
	})
}
