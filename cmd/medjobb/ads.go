package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func (c *cli) adsURL() string {
	return strings.TrimRight(c.cfg.Client.APIURL, "/") + "/api/ads"
}

func (c *cli) ads(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: ads needs list or post", errUsage)
	}

	switch args[0] {
	case "list":
		return c.listAds(ctx)
	case "post":
		return c.postAd(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown ads command %q", errUsage, args[0])
	}
}

func (c *cli) listAds(ctx context.Context) error {
	var ads []ad.Ad
	if err := c.call(ctx, http.MethodGet, nil, http.StatusOK, &ads); err != nil {
		return err
	}

	if len(ads) == 0 {
		fmt.Fprint(c.out, pterm.Info.Sprintln("No ads yet"))
		return nil
	}

	data := pterm.TableData{{"Posted", "Title", "Hospital", "Location", "Contact"}}
	for _, a := range ads {
		data = append(data, []string{
			humanize.Time(a.CreatedAt), a.Title, a.Hospital, a.Location, string(a.ContactEmail),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, table)
	return nil
}

func (c *cli) postAd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ads post", flag.ContinueOnError)
	fs.SetOutput(c.out)
	file := fs.String("file", "", "JSON file holding the ad")
	title := fs.String("title", "", "Title")
	hospital := fs.String("hospital", "", "Hospital")
	department := fs.String("department", "", "Department")
	location := fs.String("location", "", "Location")
	country := fs.String("country", "", "Sweden or Norway")
	description := fs.String("description", "", "Description")
	email := fs.String("email", "", "Contact email")
	phone := fs.String("phone", "", "Contact phone")
	applyURL := fs.String("url", "", "Application URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req ad.CreateAdRequest
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read ad file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return ad.ErrInvalidRequest().WithDetail("file", *file).WithCause(err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = *title
		case "hospital":
			req.Hospital = *hospital
		case "department":
			req.Department = *department
		case "location":
			req.Location = *location
		case "country":
			if parsed, ok := kernel.ParseCountry(*country); ok {
				req.Country = parsed
			} else {
				req.Country = kernel.Country(*country)
			}
		case "description":
			req.Description = *description
		case "email":
			req.ContactEmail = kernel.Email(*email)
		case "phone":
			req.ContactPhone = kernel.Phone(*phone)
		case "url":
			req.ApplicationURL = *applyURL
		}
	})

	var created ad.Ad
	if err := c.call(ctx, http.MethodPost, req, http.StatusCreated, &created); err != nil {
		return err
	}
	fmt.Fprint(c.out, pterm.Success.Sprintfln("Ad %s posted", created.ID))
	return nil
}

// call sends body as JSON and decodes a response with status want into out
func (c *cli) call(ctx context.Context, method string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.adsURL(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return ad.ErrStoreUnavailable().WithDetail("url", c.adsURL()).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return remoteError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// remoteError rebuilds the server's error body
func remoteError(resp *http.Response) error {
	var body struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return fmt.Errorf("server answered %s", resp.Status)
	}

	return &errx.Error{
		Code:       errx.Code(body.Code),
		Type:       errx.TypeExternal,
		Message:    body.Message,
		HTTPStatus: resp.StatusCode,
		Details:    body.Details,
	}
}
