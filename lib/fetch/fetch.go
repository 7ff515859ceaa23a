package fetch

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"heatindex-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// Client fetches publisher pages. Both publishers sit behind CDNs that
// are hostile to plain library user agents, hence the browser UA and
// the cloudflare bypass transport.
type Client struct {
	Http *resty.Client
}

type Options struct {
	Timeout time.Duration
	Retries int
}

func NewClient(opts Options) (Client, error) {
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 45
	}
	if opts.Retries == 0 {
		opts.Retries = 4
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return Client{}, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetHeader("accept-language", "en-US,en;q=0.9")
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(time.Second * 2)
	client.SetRetryMaxWaitTime(time.Minute)

	telemetry.InstrumentResty(client, "lib/fetch")

	return Client{Http: client}, nil
}

// Html fetches a page and returns its raw markup.
func (c Client) Html(ctx context.Context, url string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("fetch %s: status %s", url, res.Status())
	}
	return res.String(), nil
}
