package protocal

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"ecm-connector/configs"
	httpAdapter "ecm-connector/internal/adapters/input/http"
	"ecm-connector/internal/adapters/output/automation"
	"ecm-connector/internal/adapters/output/cmis"
	"ecm-connector/internal/adapters/output/memory"
	"ecm-connector/internal/adapters/output/postgres"
	"ecm-connector/internal/adapters/output/rest"
	"ecm-connector/internal/application"
	"ecm-connector/internal/ports/output"
	"ecm-connector/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logrus.Info(conf.Env)
	if conf.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept,Authorization," + httpAdapter.HeaderRequestID,
		ExposeHeaders: httpAdapter.HeaderRequestID,
	}))

	// The audit log is optional; without a postgres host calls are not recorded
	var auditRepo output.AuditRepository
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		conf.Postgres.Host,
		conf.Postgres.Port,
		conf.Postgres.Username,
		conf.Postgres.Password,
		conf.Postgres.DbName,
		conf.Postgres.SSLMode,
	)
	switch {
	case errors.Is(err, gorm.ErrNotConfigured):
		// audit log stays disabled
	case err != nil:
		return err
	default:
		auditRepo = postgres.NewAuditRepository(dbConGorm.Postgres)
	}

	// Wire up the hexagonal architecture layers
	// Output adapters (automation binding, REST api, document cache)
	automationConnector, err := automation.NewConnector(conf.Nuxeo, conf.Debug)
	if err != nil {
		return err
	}
	restClient := rest.NewClient(conf.Nuxeo, conf.Debug)
	cache := memory.NewDocumentCache()

	// Application services (use cases)
	automationSessions := application.NewSessionManager[output.AutomationSession](
		"automation",
		automationConnector,
		conf.Session.IdleTimeoutDuration(),
		conf.Session.CheckIntervalDuration(),
	)
	documentSrv := application.NewDocumentService(automationSessions, cache, restClient, conf.Nuxeo.URL)
	auditSrv := application.NewAuditService(auditRepo)

	services := httpAdapter.Services{
		Documents:   documentSrv,
		Lifecycle:   documentSrv,
		Workflows:   documentSrv,
		Permissions: documentSrv,
		Collections: documentSrv,
		Audit:       auditSrv,
	}

	var cmisSrv *application.CMISService
	if conf.CMIS.Enabled {
		cmisConnector, err := cmis.NewConnector(conf.CMIS, conf.Debug)
		if err != nil {
			return err
		}
		cmisSessions := application.NewSessionManager[output.CMISSession](
			"cmis",
			cmisConnector,
			conf.Session.IdleTimeoutDuration(),
			conf.Session.CheckIntervalDuration(),
		)
		cmisSrv = application.NewCMISService(cmisSessions)
		services.CMIS = cmisSrv
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			documentSrv.Shutdown()
			if cmisSrv != nil {
				cmisSrv.Shutdown()
			}
			if dbConGorm != nil {
				gorm.DisconnectPostgres(dbConGorm.Postgres)
			}
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(services)
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}
