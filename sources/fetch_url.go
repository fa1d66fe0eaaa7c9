package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

// FetchURL opens a program served over HTTP. The body is streamed; the
// caller closes it.
type FetchURL func(ctx context.Context, url string) (io.ReadCloser, error)

func (Module) FetchURL(
	client nets.HTTPClient,
	logger logs.Logger,
) FetchURL {
	return func(ctx context.Context, url string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("fetch %s: %w", url, err))
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, logs.WrapSpan(ctx, fmt.Errorf("fetch %s: %s", url, resp.Status))
		}
		logger.InfoContext(ctx, "program fetched",
			"url", url,
			"length", resp.ContentLength,
		)
		return resp.Body, nil
	}
}
