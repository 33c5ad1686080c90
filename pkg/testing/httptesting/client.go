package httptesting

import (
	"net/http"
	"os"
)

// EchoSave replies every request with the same content and stores the last
// request in saveTo so that tests can inspect the signed query.
type EchoSave struct {
	saveTo     **http.Request
	statusCode int
	content    string
	err        error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	code := st.statusCode
	if code == 0 {
		code = http.StatusOK
	}

	return BuildResponseString(code, st.content), nil
}

func HttpClientFromFile(filename string) *http.Client {
	rawBytes, err := os.ReadFile(filename)
	transport := EchoSave{err: err, content: string(rawBytes)}
	return &http.Client{Transport: &transport}
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoSave{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithStatus(statusCode int, content string) *http.Client {
	transport := EchoSave{statusCode: statusCode, content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoSave{err: err}
	return &http.Client{Transport: &transport}
}

// HttpClientSaver saves the last *http.Request in the local variable provided by the caller.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	transport := EchoSave{saveTo: saved, content: content}
	return &http.Client{Transport: &transport}
}
