package schema

import (
	"bytes"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/go-resty/resty/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	remoteRefTimeout    = 5 * time.Second
	remoteRefRetryCount = 2
)

// httpLoader fetches remote $ref targets for the santhosh engine.
type httpLoader struct {
	client *resty.Client
}

func newHTTPLoader() *httpLoader {
	return &httpLoader{
		client: resty.New().
			SetTimeout(remoteRefTimeout).
			SetRetryCount(remoteRefRetryCount),
	}
}

func (l *httpLoader) Load(url string) (any, error) {
	res, err := l.client.R().Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to request %s", url)
	}

	if !res.IsSuccess() {
		return nil, errors.Errorf("failed to download %s (%d): %s", url, res.StatusCode(), string(res.Body()))
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", url)
	}

	return doc, nil
}
