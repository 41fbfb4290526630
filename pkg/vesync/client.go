package vesync

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	baseURL    = "https://smartapi.vesync.com"
	appVersion = "2.8.6"
	phoneBrand = "SM N9005"
	phoneOS    = "Android"
	userType   = "1"
)

// Client talks to the VeSync cloud API. A Client is not safe for concurrent
// use; callers are expected to serialize access.
type Client struct {
	httpClient *http.Client
	username   string
	password   string
	timeZone   string
	token      string
	accountID  string
	logger     *zap.Logger
}

type apiResponse struct {
	Code   int64           `json:"code"`
	Msg    string          `json:"msg"`
	Result json.RawMessage `json:"result"`
}

type loginResult struct {
	Token     string `json:"token"`
	AccountID string `json:"accountID"`
}

type deviceListResult struct {
	Total int             `json:"total"`
	List  []*DeviceRecord `json:"list"`
}

func NewClient(username, password, timeZone string, logger *zap.Logger) *Client {
	if timeZone == "" {
		timeZone = "America/New_York"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		username:   username,
		password:   password,
		timeZone:   timeZone,
		logger:     logger,
	}
}

// Login authenticates against the VeSync cloud and stores the session token
// and account id for subsequent calls.
func (c *Client) Login() error {
	if c.username == "" || c.password == "" {
		return errors.New("vesync: username and password are required")
	}
	body := map[string]any{
		"email":          c.username,
		"password":       md5Hex(c.password),
		"devToken":       "",
		"userType":       userType,
		"method":         "login",
		"appVersion":     appVersion,
		"phoneBrand":     phoneBrand,
		"phoneOS":        phoneOS,
		"acceptLanguage": "en",
		"timeZone":       c.timeZone,
		"traceId":        uuid.NewString(),
	}
	var result loginResult
	if err := c.post("/cloud/v1/user/login", body, &result); err != nil {
		return err
	}
	if result.Token == "" || result.AccountID == "" {
		return errors.New("vesync: login response missing token or accountID")
	}
	c.token = result.Token
	c.accountID = result.AccountID
	return nil
}

// GetDevices fetches the raw device list for the account.
func (c *Client) GetDevices() ([]*DeviceRecord, error) {
	if c.token == "" {
		return nil, errors.New("vesync: not logged in")
	}
	body := c.authBody("devices")
	body["pageNo"] = "1"
	body["pageSize"] = "100"

	var result deviceListResult
	if err := c.post("/cloud/v1/deviceManaged/devices", body, &result); err != nil {
		return nil, err
	}
	return result.List, nil
}

// CallBypassV2 invokes a device command through the bypassV2 endpoint and
// decodes the inner result payload into out (out may be nil for commands
// that only report success).
func (c *Client) CallBypassV2(cid, configModule, method string, data map[string]any, out any) error {
	if c.token == "" {
		return errors.New("vesync: not logged in")
	}
	if data == nil {
		data = map[string]any{}
	}
	body := c.authBody("bypassV2")
	body["cid"] = cid
	body["configModule"] = configModule
	body["debugMode"] = false
	body["deviceRegion"] = "EU"
	body["payload"] = map[string]any{
		"method": method,
		"source": "APP",
		"data":   data,
	}

	var result struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.post("/cloudv2/deviceManaged/bypassV2", body, &result); err != nil {
		return err
	}
	if out != nil && len(result.Result) > 0 {
		if err := json.Unmarshal(result.Result, out); err != nil {
			return fmt.Errorf("vesync: decode %s result: %w", method, err)
		}
	}
	return nil
}

func (c *Client) authBody(method string) map[string]any {
	return map[string]any{
		"method":         method,
		"token":          c.token,
		"accountID":      c.accountID,
		"appVersion":     appVersion,
		"phoneBrand":     phoneBrand,
		"phoneOS":        phoneOS,
		"acceptLanguage": "en",
		"timeZone":       c.timeZone,
		"traceId":        uuid.NewString(),
	}
}

func (c *Client) post(path string, body any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("vesync: marshal request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("vesync: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "vesync2mqtt")
	if c.token != "" {
		req.Header.Set("tk", c.token)
		req.Header.Set("accountid", c.accountID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vesync: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vesync: %s: unexpected status %d", path, resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("vesync: %s: decode response: %w", path, err)
	}
	if envelope.Code != 0 {
		return fmt.Errorf("vesync: %s: API error %d: %s", path, envelope.Code, envelope.Msg)
	}
	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("vesync: %s: decode result: %w", path, err)
		}
	}
	return nil
}

func md5Hex(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}
