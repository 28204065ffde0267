// Command nexrad-tileserver serves rendered reflectivity tiles over HTTP,
// loading each site's realtime volume number 0 from S3 on its first request
// and serving that cached cut from then on.
package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/kallsyms/go-nexrad-tiles/archive2"
	"github.com/kallsyms/go-nexrad-tiles/cut"
	"github.com/kallsyms/go-nexrad-tiles/tile"
)

var cache = struct {
	sync.Mutex
	cuts map[string]*cut.Cut
}{cuts: make(map[string]*cut.Cut)}

func main() {
	logrus.SetLevel(logrus.InfoLevel)

	r := mux.NewRouter()
	r.HandleFunc("/tile/{site}/{z}/{x}/{y}.png", tileHandler)
	r.HandleFunc("/tile/{site}/{z}/{x}/{y}/meta.json", metaHandler)

	srv := &http.Server{
		Addr:         "0.0.0.0:8081",
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      r,
	}

	logrus.Fatal(srv.ListenAndServe())
}

// loadCut returns the cached cut for site, fetching and building it from the
// site's realtime volume 0 chunks on first request.
func loadCut(site string) (*cut.Cut, error) {
	cache.Lock()
	defer cache.Unlock()

	if c, ok := cache.cuts[site]; ok {
		return c, nil
	}

	ar, err := archive2.ExtractRealtime(site, 0)
	if err != nil {
		return nil, err
	}

	builder := cut.NewBuilder()
	var result *cut.Cut
	for _, r := range ar.Radials {
		result, err = builder.Push(r)
		if err != nil {
			return nil, err
		}
		if result != nil {
			break
		}
	}
	if result == nil {
		return nil, errNoCut
	}

	cache.cuts[site] = result
	return result, nil
}

var errNoCut = httpError("archive did not contain a complete elevation cut")

type httpError string

func (e httpError) Error() string { return string(e) }

func parseCoord(vars map[string]string) (tile.Coord, error) {
	z, err := strconv.Atoi(vars["z"])
	if err != nil {
		return tile.Coord{}, err
	}
	x, err := strconv.ParseInt(vars["x"], 10, 64)
	if err != nil {
		return tile.Coord{}, err
	}
	y, err := strconv.ParseInt(vars["y"], 10, 64)
	if err != nil {
		return tile.Coord{}, err
	}
	return tile.Coord{X: x, Y: y, Z: z}, nil
}

func tileHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	c, err := loadCut(vars["site"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	coord, err := parseCoord(vars)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	rendered := tile.Render(c, coord, tile.SchemeNOAA)
	if err := tile.EncodePNG(w, rendered); err != nil {
		logrus.Error(err)
	}
}

func metaHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	c, err := loadCut(vars["site"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		RadarIdentifier string    `json:"radar_identifier"`
		Latitude        float32   `json:"latitude"`
		Longitude       float32   `json:"longitude"`
		VCP             uint32    `json:"vcp"`
		StartTimestamp  time.Time `json:"start_timestamp"`
		EndTimestamp    time.Time `json:"end_timestamp"`
		Radials         int       `json:"radials"`
	}{
		RadarIdentifier: c.RadarIdentifier,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		VCP:             c.VCP,
		StartTimestamp:  c.StartTimestamp,
		EndTimestamp:    c.EndTimestamp,
		Radials:         c.Len(),
	})
}
