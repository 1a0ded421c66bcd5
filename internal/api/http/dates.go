package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kagabo/duka-manager/internal/entity"
)

const dateLayout = "2006-01-02"

// windowFromQuery reads the optional from/to date parameters. Absent
// parameters leave the window open on that side; malformed dates are an
// error the handler turns into a 400.
func windowFromQuery(r *http.Request) (entity.DateWindow, error) {
	var w entity.DateWindow
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return w, fmt.Errorf("bad from date %q: %w", v, err)
		}
		w.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return w, fmt.Errorf("bad to date %q: %w", v, err)
		}
		w.To = &t
	}
	return w, nil
}
