package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/listing"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/recommend"
)

// homeContext drives the recommendations on the landing page.
const homeContext = "technical performance"

func newRouter(a *app) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(a.logger, "/healthz"))
	r.SetHTMLTemplate(tmpl)
	r.NoRoute(a.notFound)

	r.GET("/", a.home)
	r.GET("/about", a.about)
	r.GET("/services", a.services)
	r.GET("/services/:slug", a.service)
	r.GET("/blog", a.blog)
	r.GET("/blog/:slug", a.post)
	r.GET("/work", a.work)
	r.GET("/work/:slug", a.project)

	r.GET("/contact", a.contactPage)
	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", a.contactForm)
	r.POST("/contact", a.submitContact)

	api := r.Group("/api")
	api.GET("/posts", a.apiPosts)
	api.GET("/posts/:slug", a.apiPost)
	api.GET("/projects", a.apiProjects)
	api.GET("/projects/:slug", a.apiProject)
	api.GET("/recommendations", a.apiRecommendations)
	api.GET("/categories", a.apiCategories)
	api.GET("/tags", a.apiTags)

	r.GET("/healthz", a.healthz)
	return r, nil
}

// render executes a full page, adding the values every page layout reads.
func (a *app) render(c *gin.Context, code int, name, active, pageTitle string, data gin.H) {
	data["site"] = a.cfg.Site
	data["active"] = active
	data["pageTitle"] = pageTitle
	c.HTML(code, name, data)
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (a *app) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	a.render(c, http.StatusNotFound, "not-found.html", "", "Page not found", gin.H{
		"path": c.Request.URL.Path,
	})
}

func (a *app) home(c *gin.Context) {
	cat := a.store.Current()
	bio, _ := a.engine.ContextualBio(recommend.VariantHome, "")

	data := gin.H{
		"headline":     HeroHeadline,
		"tagline":      HeroTagline,
		"availability": AvailabilityNote,
		"bio":          bio,
		"services":     cat.Services(),
		"projects":     cat.FeaturedProjects(),
		"recs":         a.engine.StrategicRecommendations(homeContext),
	}
	if post, ok := cat.FeaturedPost(); ok {
		data["featuredPost"] = post
	}
	a.render(c, http.StatusOK, "index.html", "home", "", data)
}

func (a *app) about(c *gin.Context) {
	bio, _ := a.engine.ContextualBio(recommend.VariantAbout, c.Query("focus"))
	a.render(c, http.StatusOK, "about.html", "about", "About", gin.H{
		"intro":        AboutIntro,
		"bio":          bio,
		"testimonials": a.engine.RelevantTestimonials("communication", 3),
	})
}

func (a *app) services(c *gin.Context) {
	a.render(c, http.StatusOK, "services.html", "services", "Services", gin.H{
		"services": a.store.Current().Services(),
		"process":  Process,
	})
}

func (a *app) service(c *gin.Context) {
	svc, ok := a.store.Current().ServiceBySlug(c.Param("slug"))
	if !ok {
		a.notFound(c)
		return
	}
	context := strings.ToLower(svc.Title + " " + strings.Join(svc.Technologies, " "))
	bio, _ := a.engine.ContextualBio(recommend.VariantCaseStudy, "")

	a.render(c, http.StatusOK, "service.html", "services", svc.Title, gin.H{
		"service": svc,
		"bio":     bio,
		"recs":    a.engine.StrategicRecommendations(context),
	})
}

func (a *app) blog(c *gin.Context) {
	cat := a.store.Current()
	q := listing.ResetPosts()
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(err)
		q = listing.ResetPosts()
	}
	q.Sort = listing.ParseSortKey(string(q.Sort))

	data := gin.H{
		"categories": cat.Categories(),
		"tags":       cat.Tags(),
		"sorts":      postSorts,
	}
	if featured, ok := cat.FeaturedPost(); ok && !q.Active() {
		q.HideFeatured = true
		data["featured"] = featured
	}
	data["query"] = q
	data["posts"] = listing.FilterPosts(cat.Posts(), q)

	if isHTMX(c) {
		c.HTML(http.StatusOK, "post-list", data)
		return
	}
	a.render(c, http.StatusOK, "blog.html", "blog", "Blog", data)
}

// postContext is the recommendation context for a post: its categories and
// tags, lowercased to meet the rules' keywords.
func postContext(p content.BlogPost) string {
	words := append(append([]string{}, p.Categories...), p.Tags...)
	return strings.ToLower(strings.Join(words, " "))
}

func (a *app) post(c *gin.Context) {
	post, ok := a.store.Current().PostBySlug(c.Param("slug"))
	if !ok {
		a.notFound(c)
		return
	}
	body, err := a.markdown.Render(post.Content)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render post")
		return
	}
	bio, _ := a.engine.ContextualBio(recommend.VariantBlog, "")

	a.render(c, http.StatusOK, "post.html", "blog", post.Title, gin.H{
		"post": post,
		"body": body,
		"bio":  bio,
		"recs": a.engine.StrategicRecommendations(postContext(post)),
	})
}

func (a *app) work(c *gin.Context) {
	cat := a.store.Current()
	q := listing.ResetProjects()
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(err)
		q = listing.ResetProjects()
	}
	q.Sort = listing.ParseSortKey(string(q.Sort))

	data := gin.H{
		"industries":   cat.ProjectCategories(),
		"technologies": cat.Technologies(),
		"sorts":        projectSorts,
		"query":        q,
		"projects":     listing.FilterProjects(cat.Projects(), q),
	}
	if isHTMX(c) {
		c.HTML(http.StatusOK, "project-list", data)
		return
	}
	a.render(c, http.StatusOK, "work.html", "work", "Work", data)
}

// projectContext is the recommendation context for a project: its industry
// and technology names, lowercased.
func projectContext(p content.Project) string {
	words := []string{p.Industry}
	for _, t := range p.Technologies {
		words = append(words, t.Name)
	}
	return strings.ToLower(strings.Join(words, " "))
}

func (a *app) project(c *gin.Context) {
	project, ok := a.store.Current().ProjectBySlug(c.Param("slug"))
	if !ok {
		a.notFound(c)
		return
	}
	a.render(c, http.StatusOK, "project.html", "work", project.Title, gin.H{
		"project": project,
		"recs":    a.engine.StrategicRecommendations(projectContext(project)),
	})
}

func contactFormData(form contact.Form, errs contact.FieldErrors) gin.H {
	return gin.H{
		"form":         form,
		"errors":       errs,
		"projectTypes": ProjectTypes,
		"budgets":      Budgets,
	}
}

func (a *app) contactPage(c *gin.Context) {
	data := contactFormData(contact.Form{}, nil)
	data["intro"] = ContactIntro
	data["testimonials"] = a.engine.RelevantTestimonials("communication", 1)
	a.render(c, http.StatusOK, "contact.html", "contact", "Contact", data)
}

func (a *app) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", contactFormData(contact.Form{}, nil))
}

// Handle contact form submission with HTMX
func (a *app) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{"error": ContactFailure})
		return
	}

	receipt, err := a.contact.Submit(c.Request.Context(), form)
	var invalid *contact.ValidationError
	switch {
	case errors.As(err, &invalid):
		c.HTML(http.StatusUnprocessableEntity, "contact-form.html", contactFormData(form, invalid.Fields))
	case err != nil:
		a.logger.Warn("Contact submission failed", zap.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": ContactFailure})
	default:
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": ContactSuccess,
			"receipt": receipt,
		})
	}
}

func (a *app) apiPosts(c *gin.Context) {
	q := listing.ResetPosts()
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing.FilterPosts(a.store.Current().Posts(), q))
}

func (a *app) apiPost(c *gin.Context) {
	post, ok := a.store.Current().PostBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *app) apiProjects(c *gin.Context) {
	q := listing.ResetProjects()
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing.FilterProjects(a.store.Current().Projects(), q))
}

func (a *app) apiProject(c *gin.Context) {
	project, ok := a.store.Current().ProjectBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *app) apiRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, a.engine.StrategicRecommendations(c.Query("context")))
}

func (a *app) apiCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Current().Categories())
}

func (a *app) apiTags(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Current().Tags())
}

func (a *app) healthz(c *gin.Context) {
	cat := a.store.Current()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"posts":    len(cat.Posts()),
		"projects": len(cat.Projects()),
	})
}
