// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/store"
	"scholargate/internal/workflow"
)

// Posts groups the scholarship-post HTTP handlers. Writes go through the
// workflow service; reads hit the stores directly.
type Posts struct {
	service *workflow.PostService
	posts   *store.PostStore
	tags    *store.TagStore
	degrees *store.DegreeLevelStore
}

// NewPosts creates the post handler group.
func NewPosts(service *workflow.PostService, posts *store.PostStore, tags *store.TagStore, degrees *store.DegreeLevelStore) *Posts {
	return &Posts{service: service, posts: posts, tags: tags, degrees: degrees}
}

// attachRelations loads the tag and degree-level sets onto each post.
// Lookup failures leave the post without relations rather than failing
// the whole listing.
func (h *Posts) attachRelations(posts []models.Post) {
	for i := range posts {
		tags, err := h.tags.ForPost(posts[i].ID)
		if err != nil {
			slog.Warn("load post tags failed", "post_id", posts[i].ID, "error", err)
		}
		posts[i].Tags = tags

		levels, err := h.degrees.ForPost(posts[i].ID)
		if err != nil {
			slog.Warn("load post degree levels failed", "post_id", posts[i].ID, "error", err)
		}
		posts[i].DegreeLevels = levels
	}
}

// List returns every post, newest first. ?status=published narrows to
// published posts only.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	var (
		posts []models.Post
		err   error
	)
	if r.URL.Query().Get("status") == string(models.PostStatusPublished) {
		posts, err = h.posts.ListPublished()
	} else {
		posts, err = h.posts.List()
	}
	if err != nil {
		respondError(w, "list posts", err)
		return
	}
	h.attachRelations(posts)
	respondData(w, http.StatusOK, posts)
}

// Get returns one post by id with relations and bumps its view counter.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid post id")
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		respondError(w, "get post", err)
		return
	}
	if post == nil {
		respondNotFound(w)
		return
	}

	if err := h.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("increment views failed", "post_id", post.ID, "error", err)
	} else {
		post.Views++
	}

	single := []models.Post{*post}
	h.attachRelations(single)
	respondData(w, http.StatusOK, single[0])
}

// GetBySlug returns one post by slug with relations. Used by the public
// site; also bumps the view counter.
func (h *Posts) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, "get post by slug", err)
		return
	}
	if post == nil {
		respondNotFound(w)
		return
	}

	if err := h.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("increment views failed", "post_id", post.ID, "error", err)
	} else {
		post.Views++
	}

	single := []models.Post{*post}
	h.attachRelations(single)
	respondData(w, http.StatusOK, single[0])
}

// Create handles POST /api/posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var in workflow.PostInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	post, err := h.service.Create(r.Context(), &in)
	if err != nil {
		respondError(w, "create post", err)
		return
	}

	single := []models.Post{*post}
	h.attachRelations(single)
	respondData(w, http.StatusCreated, single[0])
}

// Update handles PUT /api/posts/{id} with partial-update semantics.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid post id")
		return
	}

	var in workflow.PostInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	post, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		respondError(w, "update post", err)
		return
	}

	single := []models.Post{*post}
	h.attachRelations(single)
	respondData(w, http.StatusOK, single[0])
}

// UpdateStatus handles PATCH /api/posts/{id}/status. A transition into
// published fires the newsletter fan-out exactly as a full update would.
func (h *Posts) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid post id")
		return
	}

	var in struct {
		Status models.PostStatus `json:"status"`
	}
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	post, err := h.service.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		respondError(w, "update post status", err)
		return
	}
	respondData(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid post id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, "delete post", err)
		return
	}
	respondMessage(w, http.StatusOK, "post deleted")
}
