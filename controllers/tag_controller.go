package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
)

type TagController struct {
	tagRepo *repository.TagRepository
}

func NewTagController(tr *repository.TagRepository) *TagController {
	return &TagController{tagRepo: tr}
}

// GET /api/tags/
func (ctl *TagController) List(c *gin.Context) {
	tags, err := ctl.tagRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tags)
}

// GET /api/tags/:id/
func (ctl *TagController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	tag, err := ctl.tagRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "tag not found")
		return
	}
	resp.OK(c, tag)
}
