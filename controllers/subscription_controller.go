package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/pkg/paginate"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
	"github.com/lorpaxx/foodgram-project-react/utils"
)

type SubscriptionController struct {
	subscriptions *services.SubscriptionService
	recipeRepo    *repository.RecipeRepository
	pageSize      int
}

func NewSubscriptionController(ss *services.SubscriptionService, rr *repository.RecipeRepository, pageSize int) *SubscriptionController {
	return &SubscriptionController{subscriptions: ss, recipeRepo: rr, pageSize: pageSize}
}

// recipesLimit caps how many recipes appear in a subscription entry;
// 0 means no cap.
func recipesLimit(c *gin.Context) int {
	if v, err := strconv.Atoi(c.Query("recipes_limit")); err == nil && v > 0 {
		return v
	}
	return 0
}

func (ctl *SubscriptionController) subscriptionEntry(author *entity.User, limit int) (SubscriptionResponse, error) {
	recipes, err := ctl.recipeRepo.ListByAuthor(author.ID, limit)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	total, err := ctl.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	return newSubscriptionResponse(author, recipes, total), nil
}

// POST /api/users/:id/subscribe/
func (ctl *SubscriptionController) Subscribe(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	author, err := ctl.subscriptions.Subscribe(utils.CurrentUserID(c), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	entry, err := ctl.subscriptionEntry(author, recipesLimit(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, entry)
}

// DELETE /api/users/:id/subscribe/
func (ctl *SubscriptionController) Unsubscribe(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.subscriptions.Unsubscribe(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/users/subscriptions/
func (ctl *SubscriptionController) Subscriptions(c *gin.Context) {
	p := paginate.Parse(c, ctl.pageSize)
	authors, count, err := ctl.subscriptions.Subscriptions(utils.CurrentUserID(c), p.Offset(), p.Limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	limit := recipesLimit(c)
	results := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		entry, err := ctl.subscriptionEntry(&authors[i], limit)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		results = append(results, entry)
	}
	resp.OK(c, paginate.Envelope(c, count, p, results))
}
