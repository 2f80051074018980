//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"refreshing-booking/cmd/bootstrap"
	"refreshing-booking/cmd/bootstrap/components"
	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/usecase/shared"
	"refreshing-booking/tests/e2e/common/helper"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	mailpitContainerOnce sync.Once
	mailpitTestContainer testcontainers.Container

	testSMTPUser     = "booking@refreshing.se"
	testSMTPPassword = "e2e-pass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *helper.Mailpit) {
	smtpInfo, apiInfo := startContainers(t)

	mailCfg := config.MailConfig{
		Host:     smtpInfo.Host,
		Port:     smtpInfo.Port.Int(),
		User:     testSMTPUser,
		Password: testSMTPPassword,
		From:     "Refreshing <" + testSMTPUser + ">",
	}

	router, cfg, app := buildE2EApp(mailCfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			zap.L().Warn("failed to stop fx app", zap.Error(err))
		}
	})

	mailpit := helper.NewMailpit(fmt.Sprintf("http://%s:%s", apiInfo.Host, apiInfo.Port.Port()))
	return router, cfg, mailpit
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) (smtp ContainerInfo, api ContainerInfo) {
	gin.SetMode(gin.TestMode)
	startMailpitContainerOnce(t)

	smtp, err := getContainerHostPort(mailpitTestContainer, "1025/tcp")
	require.NoError(t, err, "failed to resolve mailpit smtp port")
	api, err = getContainerHostPort(mailpitTestContainer, "8025/tcp")
	require.NoError(t, err, "failed to resolve mailpit api port")

	return smtp, api
}

// ------------------------------------------------------------
// App under test
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(mailCfg config.MailConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MailerModule,
		components.UseCaseModule,
		components.HandlerModule,

		// the relay comes from the container, not the process environment
		fx.Decorate(func(shared.MailConfigLoader) shared.MailConfigLoader {
			return staticMailConfig(mailCfg)
		}),

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app did not provide a router")
	}

	return router, cfg, app
}

type staticMailConfig config.MailConfig

func (s staticMailConfig) LoadMail() (config.MailConfig, error) {
	cfg := config.MailConfig(s)
	return cfg, cfg.Validate()
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the mail catcher once and reuse it
// ------------------------------------------------------------
func startMailpitContainerOnce(t *testing.T) {
	mailpitContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "axllent/mailpit:v1.21",
			ExposedPorts: []string{"1025/tcp", "8025/tcp"},
			Env: map[string]string{
				"MP_SMTP_AUTH_ACCEPT_ANY":     "1",
				"MP_SMTP_AUTH_ALLOW_INSECURE": "1",
				"MP_MAX_MESSAGES":             "500",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("1025/tcp"),
				wait.ForHTTP("/livez").WithPort("8025/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mailpitTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start mailpit container")

		t.Cleanup(func() {
			if mailpitTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := mailpitTestContainer.Terminate(ctx); err != nil {
					zap.L().Warn("failed to terminate mailpit container", zap.Error(err))
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared e2e suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Mailpit *helper.Mailpit
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg, mailpit := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	s.Mailpit = mailpit
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router missing")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Mailpit.Reset(s.T())
}
