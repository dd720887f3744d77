package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

func apiClient() *resty.Client {
	return resty.New().
		SetBaseURL(apiFlag).
		SetAuthToken(keyFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
}

func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
