package blogfront

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/zirvehikayem/blogfront/api"
	"github.com/zirvehikayem/blogfront/views"
)

// maxRelatedPosts caps the related-posts strip on the single-post page.
const maxRelatedPosts = 2

// handleHome serves the home feed: categories and featured posts are
// fetched concurrently, then the (optionally filtered) post list. A fetch
// failure surfaces as a toast; the page itself always renders.
func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	active := c.QueryParam("category")

	var (
		categories []string
		featured   []api.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = a.API.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		featured, err = a.API.FeaturedPosts(gctx)
		return err
	})

	toast := PopFlash(c)
	if err := g.Wait(); err != nil {
		c.Logger().Errorf("home initial load: %v", err)
		toast = api.ErrorMessage(err, "Sayfa yüklenirken bir hata oluştu")
		categories = []string{api.CategoryAll}
		featured = nil
	}

	posts, err := a.API.ListPosts(ctx, active)
	if err != nil {
		c.Logger().Errorf("home posts: %v", err)
		if toast == "" {
			toast = api.ErrorMessage(err, "Yazılar yüklenirken bir hata oluştu")
		}
	}

	return Render(c, views.Home(a.Config.site(), posts, featured, categories, active, toast))
}

// handlePost serves a single post by slug plus up to two related posts from
// the same category, found by re-querying the list endpoint.
func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	post, err := a.API.PostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.PostNotFound(a.Config.site()))
		}
		return err
	}

	var related []api.Post
	siblings, err := a.API.ListPosts(ctx, post.Category)
	if err != nil {
		// The post itself is the page; a missing related strip is not worth
		// failing the whole request.
		c.Logger().Warnf("related posts for %s: %v", slug, err)
	} else {
		for _, p := range siblings {
			if p.ID == post.ID {
				continue
			}
			related = append(related, p)
			if len(related) == maxRelatedPosts {
				break
			}
		}
	}

	return Render(c, views.Post(a.Config.site(), post, related, PopFlash(c)))
}

// handleAbout renders the about page from the backend content block.
func (a *App) handleAbout(c echo.Context) error {
	toast := PopFlash(c)
	about, err := a.API.AboutContent(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("about content: %v", err)
		toast = api.ErrorMessage(err, "Sayfa yüklenirken bir hata oluştu")
	}
	return Render(c, views.About(a.Config.site(), about, toast))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.Config.site(), PopFlash(c), CsrfToken(c)))
}

// handleContactSubmit validates and forwards the contact form, then
// redirects back with the backend's confirmation as a toast.
func (a *App) handleContactSubmit(c echo.Context) error {
	msg := api.ContactMessage{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Subject: strings.TrimSpace(c.FormValue("subject")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		Flash(c, "Lütfen zorunlu alanları doldurun.")
		return c.Redirect(http.StatusSeeOther, "/contact/")
	}

	ack, err := a.API.SubmitContact(c.Request().Context(), msg)
	if err != nil {
		c.Logger().Errorf("contact submit: %v", err)
		Flash(c, api.ErrorMessage(err, "Mesaj gönderilemedi. Lütfen tekrar deneyin."))
		return c.Redirect(http.StatusSeeOther, "/contact/")
	}
	Flash(c, ack.Message)
	return c.Redirect(http.StatusSeeOther, "/contact/")
}

// handleLoginPage shows the standalone login route. Already-authenticated
// visitors go straight to the panel.
func (a *App) handleLoginPage(c echo.Context) error {
	if a.Sessions.Verify(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.Config.site(), "", CsrfToken(c)))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.API.ListPosts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.API.ListPosts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}
