package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/config"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	apphttp "github.com/mrghanchi007/tph-live-r2/internal/http"
	"github.com/mrghanchi007/tph-live-r2/internal/http/langcookie"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	cat := catalog.Default()
	if errs := cat.Validate(); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("catalog invalid", slog.String("err", e.Error()))
		}
		os.Exit(1)
	}

	resolver := content.NewResolver(content.DefaultDictionary(), content.DefaultOverrides())

	var tplSrc seo.TemplateSource
	if cfg.TemplateURL != "" {
		tplSrc = &seo.HTTPTemplateSource{URL: cfg.TemplateURL}
	} else {
		tplSrc = &seo.FileTemplateSource{Path: cfg.TemplatePath}
	}
	seoCfg := seo.DefaultConfig()
	rewriter := seo.NewRewriter(cat, seoCfg, tplSrc, logger)

	production := cfg.Env == "production"
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:         logger,
		Catalog:        cat,
		Resolver:       resolver,
		SEO:            seoCfg,
		Rewriter:       rewriter,
		Cookies:        langcookie.New(production),
		WhatsAppNumber: cfg.WhatsAppNumber,
		StaticDir:      cfg.StaticDir,
		TemplatePath:   cfg.TemplatePath,
		SiteOrigin:     cfg.SiteOrigin,
	})

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
