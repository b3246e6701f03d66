package blogfront

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zirvehikayem/blogfront/api"
	"github.com/zirvehikayem/blogfront/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	return a.renderAdminDashboard(c, PopFlash(c))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	result := a.Sessions.Login(c, username, password)
	if !result.Success {
		return Render(c, views.AdminLogin(a.Config.site(), result.Error, CsrfToken(c)))
	}
	Flash(c, fmt.Sprintf("Hoş geldiniz, %s!", result.User.FullName))
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	a.Sessions.Logout(c)
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminEdit loads a post into the form for editing. Tags are
// re-joined with commas and <br> encoding is reversed for the textarea.
func (a *App) handleAdminEdit(c echo.Context) error {
	id := c.Param("id")
	posts, err := a.API.ListPosts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.ID == id {
			form := views.PostForm{
				ID:       p.ID,
				Title:    p.Title,
				Excerpt:  p.Excerpt,
				Content:  decodeBreaks(p.Content),
				Category: p.Category,
				Tags:     strings.Join(p.Tags, ", "),
				Featured: p.Featured,
			}
			return Render(c, views.AdminForm(a.Config.site(), form, CsrfToken(c)))
		}
	}
	return c.NoContent(http.StatusNotFound)
}

// handleAdminSave creates or updates a post depending on whether the form
// carries an id. On success the dashboard re-renders from a fresh backend
// fetch; the server copy is canonical, nothing is patched locally.
func (a *App) handleAdminSave(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id := strings.TrimSpace(c.FormValue("id"))
	input := api.PostInput{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Excerpt:  strings.TrimSpace(c.FormValue("excerpt")),
		Content:  c.FormValue("content"),
		Category: strings.TrimSpace(c.FormValue("category")),
		Tags:     SplitTags(c.FormValue("tags")),
		Featured: c.FormValue("featured") != "",
	}
	if input.Title == "" || input.Excerpt == "" || input.Content == "" || input.Category == "" {
		return a.renderAdminDashboard(c, "Lütfen zorunlu alanları doldurun.")
	}

	ctx := c.Request().Context()
	token := currentSession(c).Token
	var err error
	if id != "" {
		_, err = a.API.UpdatePost(ctx, token, id, input)
	} else {
		_, err = a.API.CreatePost(ctx, token, input)
	}
	if err != nil {
		c.Logger().Errorf("save post: %v", err)
		return a.renderAdminDashboard(c, api.ErrorMessage(err, "Yazı kaydedilirken bir hata oluştu"))
	}

	msg := "Yeni yazı başarıyla eklendi!"
	if id != "" {
		msg = "Yazı başarıyla güncellendi!"
	}
	return a.renderAdminDashboard(c, msg)
}

// handleAdminDelete removes a post. The confirmation dialog naming the post
// title lives in the dashboard view; by the time this runs the user has
// already confirmed.
func (a *App) handleAdminDelete(c echo.Context) error {
	id := c.Param("id")
	token := currentSession(c).Token
	if err := a.API.DeletePost(c.Request().Context(), token, id); err != nil {
		c.Logger().Errorf("delete post: %v", err)
		return a.renderAdminDashboard(c, api.ErrorMessage(err, "Yazı silinirken bir hata oluştu"))
	}
	return a.renderAdminDashboard(c, "Yazı başarıyla silindi!")
}

// renderAdminDashboard always refetches the authoritative list.
func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.API.ListPosts(c.Request().Context(), "")
	if err != nil {
		c.Logger().Errorf("admin list posts: %v", err)
		if msg == "" {
			msg = api.ErrorMessage(err, "Yazılar yüklenirken bir hata oluştu")
		}
	}
	sess := currentSession(c)
	return Render(c, views.AdminDashboard(a.Config.site(), sess.User, posts, msg, CsrfToken(c)))
}
