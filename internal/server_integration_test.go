//go:build integration_test || all_tests

package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/auth"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/config"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/db"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/pulse"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	itServerPort = 9000
	itServerHost = "127.0.0.1"
	itDBName     = "home_workout"
)

var itServerEndpoint = fmt.Sprintf("http://%s:%d", itServerHost, itServerPort)

type IntegrationTestSuite struct {
	suite.Suite

	dockerPool *dockertest.Pool
	server     *Server
	avatarsDir string
	teardown   []func()
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.teardown = make([]func(), 0)

	var err error
	s.dockerPool, err = dockertest.NewPool("")
	s.Require().NoError(err, "create dockertest pool")
	s.Require().NoError(s.dockerPool.Client.Ping(), "ping docker")
	s.dockerPool.MaxWait = 2 * time.Minute

	redisPort, err := s.redisSetup(ctx)
	if err != nil {
		s.cleanup()
		s.FailNow("setup redis", err.Error())
	}

	pgPort, err := s.postgresSetup(ctx)
	if err != nil {
		s.cleanup()
		s.FailNow("setup postgres", err.Error())
	}

	s.avatarsDir, err = os.MkdirTemp("", "hwg-avatars")
	s.Require().NoError(err)
	s.teardown = append(s.teardown, func() {
		_ = os.RemoveAll(s.avatarsDir)
	})

	s.server, err = NewServer(ctx, NewServerParams{
		Config:                  s.testConfig(redisPort, pgPort),
		RedisPassword:           "",
		HoneycombTracingEnabled: false,
	})
	if err != nil {
		s.cleanup()
		s.FailNow("new server", err.Error())
	}

	s.server.Serve(itServerHost, itServerPort)
	s.Require().Eventually(func() bool {
		resp, err := http.Get(itServerEndpoint + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *IntegrationTestSuite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *IntegrationTestSuite) testConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:                 "test",
		Host:                        itServerHost,
		Port:                        itServerPort,
		PrometheusMetricsHost:       itServerHost,
		PrometheusMetricsPort:       "9002",
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresUser:                "postgres",
		PostgresDBName:              itDBName,
		RunMigrations:               true,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		SessionTTLHours:             1,
		LoginRateLimitAllowedPerMin: 1000,
		AllowedOrigins:              []string{"http://localhost:5173"},
		AvatarStore:                 config.AvatarStoreDisk,
		AvatarsDiskPath:             s.avatarsDir,
	}
}

func (s *IntegrationTestSuite) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
	defer rdb.Close()
	if err := s.dockerPool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("connect to redis: %w", err)
	}

	return redisPort, nil
}

func (s *IntegrationTestSuite) postgresSetup(ctx context.Context) (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + itDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: itDBName,
	})
	if err != nil {
		return "", fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := s.dockerPool.Retry(func() error {
		return dbPool.Ping(ctx)
	}); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	return pgPort, nil
}

func (s *IntegrationTestSuite) doRequest(method, path, token string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequest(method, itServerEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) register() (username string, token string) {
	username = gofakeit.Username() + gofakeit.DigitN(4)
	status, body := s.doRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    gofakeit.Email(),
		"password": gofakeit.Password(true, true, true, false, false, 12),
	})
	s.Require().Equal(http.StatusCreated, status, string(body))

	var authResp auth.AuthResponse
	s.Require().NoError(json.Unmarshal(body, &authResp))
	s.Require().NotEmpty(authResp.Token)
	s.Require().NotNil(authResp.User)
	s.Require().Equal(username, authResp.User.Username)

	return username, authResp.Token
}

func (s *IntegrationTestSuite) TestAuth_RegisterLoginLogout() {
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)
	username := gofakeit.Username() + gofakeit.DigitN(4)

	status, body := s.doRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusCreated, status, string(body))

	// same email again
	status, body = s.doRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username + "x",
		"email":    email,
		"password": password,
	})
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(body), "Email already registered")

	status, _ = s.doRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	s.Equal(http.StatusBadRequest, status)

	status, body = s.doRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, status, string(body))
	var loginResp auth.AuthResponse
	s.Require().NoError(json.Unmarshal(body, &loginResp))
	s.Require().NotEmpty(loginResp.Token)

	status, body = s.doRequest(http.MethodGet, "/api/profile", loginResp.Token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var user auth.User
	s.Require().NoError(json.Unmarshal(body, &user))
	s.Equal(username, user.Username)

	status, _ = s.doRequest(http.MethodPost, "/api/auth/logout", loginResp.Token, nil)
	s.Require().Equal(http.StatusOK, status)

	status, _ = s.doRequest(http.MethodGet, "/api/profile", loginResp.Token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkouts_Lifecycle() {
	username, token := s.register()

	status, body := s.doRequest(http.MethodPost, "/api/workouts/generate", "", map[string]any{
		"level":       "beginner",
		"targetAreas": []string{"core", "arms"},
	})
	s.Require().Equal(http.StatusOK, status, string(body))
	var generated generator.Workout
	s.Require().NoError(json.Unmarshal(body, &generated))
	s.Require().NotEmpty(generated.Exercises)

	status, body = s.doRequest(http.MethodPost, "/api/workouts", token, map[string]any{
		"username": username,
		"workout":  generated,
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var created workouts.Workout
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Require().NotEmpty(created.ID)
	s.Equal(workouts.StatusInactive, created.Status)

	// cannot complete before starting
	status, _ = s.doRequest(http.MethodPatch, "/api/workouts/"+created.ID+"/status", token, map[string]any{
		"status":    "completed",
		"pulseRate": 120,
	})
	s.Equal(http.StatusConflict, status)

	status, body = s.doRequest(http.MethodPatch, "/api/workouts/"+created.ID+"/status", token, map[string]any{
		"status":    "active",
		"pulseRate": 72,
	})
	s.Require().Equal(http.StatusOK, status, string(body))

	status, body = s.doRequest(http.MethodGet, "/api/workouts/"+username+"/active", token, nil)
	s.Require().Equal(http.StatusOK, status)
	var active []workouts.Workout
	s.Require().NoError(json.Unmarshal(body, &active))
	s.Require().Len(active, 1)
	s.Equal(workouts.StatusActive, active[0].Status)

	status, body = s.doRequest(http.MethodPatch, "/api/workouts/"+created.ID+"/status", token, map[string]any{
		"status":    "completed",
		"pulseRate": 96,
	})
	s.Require().Equal(http.StatusOK, status, string(body))
	var completed workouts.Workout
	s.Require().NoError(json.Unmarshal(body, &completed))
	s.Equal(workouts.StatusCompleted, completed.Status)
	s.Require().NotNil(completed.PulseRates.Difference)
	s.Equal(24, *completed.PulseRates.Difference)
	s.Require().NotNil(completed.PulseRates.PercentageChange)
	s.InDelta(33.3, *completed.PulseRates.PercentageChange, 0.001)

	status, body = s.doRequest(http.MethodGet, "/api/workouts/"+username+"/pulse-history", token, nil)
	s.Require().Equal(http.StatusOK, status)
	var records []workouts.PulseRecord
	s.Require().NoError(json.Unmarshal(body, &records))
	s.Require().Len(records, 1)
	s.Equal(pulse.IntensityLight, records[0].Intensity)

	status, body = s.doRequest(http.MethodGet, "/api/profile/stats", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var stats workouts.Stats
	s.Require().NoError(json.Unmarshal(body, &stats))
	s.Equal(1, stats.TotalWorkouts)
	s.Equal(1, stats.Completed)
	s.Equal(len(generated.Exercises), stats.CompletedExercises)

	status, _ = s.doRequest(http.MethodDelete, "/api/workouts/"+created.ID, token, nil)
	s.Require().Equal(http.StatusOK, status)

	status, _ = s.doRequest(http.MethodDelete, "/api/workouts/"+created.ID, token, nil)
	s.Equal(http.StatusNotFound, status)

	status, body = s.doRequest(http.MethodGet, "/api/workouts/"+username, token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))
}

func (s *IntegrationTestSuite) TestWorkouts_RequireSession() {
	status, _ := s.doRequest(http.MethodPost, "/api/workouts", "", map[string]any{})
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest(http.MethodGet, "/api/workouts/someone", "not-a-real-token", nil)
	s.Equal(http.StatusUnauthorized, status)
}
