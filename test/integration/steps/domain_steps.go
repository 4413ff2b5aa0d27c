// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers steps that set up users, categories and
// transactions through the public API.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I have a category named "([^"]*)" of type "([^"]*)"$`, iHaveACategoryNamedOfType)
	ctx.Step(`^I have a transaction "([^"]*)" of "([^"]*)" in "([^"]*)" on "([^"]*)"$`, iHaveATransactionOfInOn)
	ctx.Step(`^I send a "([^"]*)" request to the category "([^"]*)"$`, iSendARequestToTheCategory)
	ctx.Step(`^I send a "([^"]*)" request to the category "([^"]*)" with body:$`, iSendARequestToTheCategoryWithBody)
	ctx.Step(`^I send a "([^"]*)" request to the transaction "([^"]*)"$`, iSendARequestToTheTransaction)
	ctx.Step(`^I send a "([^"]*)" request to the transaction "([^"]*)" with body:$`, iSendARequestToTheTransactionWithBody)
}

// postJSON sends a JSON payload and decodes the response into a generic map.
func (tc *TestContext) postJSON(endpoint string, payload map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := tc.doRequest(http.MethodPost, endpoint, bytes.NewBuffer(body)); err != nil {
		return nil, err
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w. Body: %s", err, string(tc.responseBody))
	}
	return decoded, nil
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.postJSON("/api/v1/auth/register", map[string]interface{}{
		"email":     email,
		"full_name": "Test User",
		"password":  password,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iAmLoggedInAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	decoded, err := tc.postJSON("/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	token, ok := decoded["access_token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("login response missing access_token: %s", string(tc.responseBody))
	}
	tc.accessToken = token
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func iHaveACategoryNamedOfType(ctx context.Context, name, categoryType string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	decoded, err := tc.postJSON("/api/v1/categories", map[string]interface{}{
		"name": name,
		"type": categoryType,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("category creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	id, ok := decoded["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("category response missing id: %s", string(tc.responseBody))
	}
	tc.categoryIDs[name] = id
	return nil
}

func iHaveATransactionOfInOn(ctx context.Context, description, amount, categoryName, day string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	categoryID, ok := tc.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("unknown category %q, create it first", categoryName)
	}

	decoded, err := tc.postJSON("/api/v1/transactions", map[string]interface{}{
		"category_id": categoryID,
		"amount":      amount,
		"description": description,
		"date":        day,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	id, ok := decoded["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("transaction response missing id: %s", string(tc.responseBody))
	}
	tc.transactionIDs[description] = id
	return nil
}

func iSendARequestToTheCategory(ctx context.Context, method, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.categoryIDs[name]
	if !ok {
		return fmt.Errorf("unknown category %q, create it first", name)
	}
	return tc.doRequest(method, "/api/v1/categories/"+id, nil)
}

func iSendARequestToTheCategoryWithBody(ctx context.Context, method, name string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.categoryIDs[name]
	if !ok {
		return fmt.Errorf("unknown category %q, create it first", name)
	}
	return tc.doRequest(method, "/api/v1/categories/"+id, bytes.NewBufferString(body.Content))
}

func iSendARequestToTheTransaction(ctx context.Context, method, description string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.transactionIDs[description]
	if !ok {
		return fmt.Errorf("unknown transaction %q, create it first", description)
	}
	return tc.doRequest(method, "/api/v1/transactions/"+id, nil)
}

func iSendARequestToTheTransactionWithBody(ctx context.Context, method, description string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.transactionIDs[description]
	if !ok {
		return fmt.Errorf("unknown transaction %q, create it first", description)
	}
	return tc.doRequest(method, "/api/v1/transactions/"+id, bytes.NewBufferString(body.Content))
}
