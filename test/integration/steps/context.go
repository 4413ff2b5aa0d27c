// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finlog/backend/config"
	"github.com/finlog/backend/internal/infra/dependency"
	"github.com/finlog/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Entities created during the scenario, keyed by name/description
	categoryIDs    map[string]string
	transactionIDs map[string]string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		testDb := mock.NewDb()
		if err := testDb.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset test database: %w", err)
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear test redis: %w", err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = "integration-test-secret"

		injector := dependency.NewInjector(cfg, testDb.Conn, redisClient)

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			categoryIDs:    make(map[string]string),
			transactionIDs: make(map[string]string),
			cfg:            cfg,
		}
		tc.engine = injector.Router.Setup(cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDomainSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response should have (\d+) items$`, theResponseShouldHaveItems)
}

// doRequest performs an HTTP request against the scenario's server, carrying
// the stored headers and bearer token.
func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// lookupField resolves a dotted path such as "user.email" or "trends.0.income"
// inside the decoded response body.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in field '%s'", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' is not addressable in response", path)
		}
	}
	return current, nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response must not contain '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

func theResponseShouldHaveItems(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var items []interface{}
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %w. Body: %s", err, string(tc.responseBody))
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d", expected, len(items))
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not an array", field)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}
