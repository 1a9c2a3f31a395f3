package downloader

import (
	"net/http"

	"github.com/schollz/progressbar/v3"
)

// Hook is called after every chunk is written to disk, and once more with the
// error if streaming fails. bar counts the bytes written so far. Returning an
// error after a chunk aborts the download; on the failure call the return
// value is ignored and the streaming error is reported.
type Hook func(resp *http.Response, bar *progressbar.ProgressBar, err error) error
