package handlers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"

	applog "hydromix/internal/log"
	"hydromix/internal/mixture"
	"hydromix/models"
)

const maxAPIBody = 64 << 10

type calculateRequest struct {
	ContainerSize *float64 `json:"containerSize"`
	Unit          string   `json:"unit"`
	System        string   `json:"measurementSystem"`
	Variant       string   `json:"variant"`
}

type displayValues struct {
	MasterBlend    string `json:"masterBlend"`
	EpsomSalt      string `json:"epsomSalt"`
	CalciumNitrate string `json:"calciumNitrate"`
	TotalVolume    string `json:"totalVolume"`
}

type calculateResponse struct {
	Valid   bool                       `json:"valid"`
	Errors  []string                   `json:"errors,omitempty"`
	Result  *mixture.CalculationResult `json:"result,omitempty"`
	Display *displayValues             `json:"display,omitempty"`
}

type unitResponse struct {
	Unit        string        `json:"unit"`
	DisplayName string        `json:"displayName"`
	FactorML    float64       `json:"factorML"`
	Range       mixture.Range `json:"range"`
}

type sliderResponse struct {
	System string        `json:"system"`
	Unit   string        `json:"unit"`
	Range  mixture.Range `json:"range"`
}

type unitsResponse struct {
	Variant string          `json:"variant"`
	Units   []unitResponse  `json:"units"`
	Slider  *sliderResponse `json:"slider,omitempty"`
}

// APICalculate exposes the calculator as JSON. GET reads the same query
// parameters as the page; POST accepts a JSON body. Responses carry an ETag
// derived from the body so repeated identical requests can be revalidated.
func APICalculate(w http.ResponseWriter, r *http.Request) {
	var (
		input   mixture.CalculationInput
		variant mixture.Variant
	)

	switch r.Method {
	case http.MethodGet:
		input, variant = inputFromValues(r, r.URL.Query())
	case http.MethodPost:
		var err error
		input, variant, err = decodeCalculateRequest(r)
		if err != nil {
			applog.Debug(r.Context(), "rejecting calculate request body", "error", err)
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	status := http.StatusOK
	var resp calculateResponse
	result, err := variant.Calculate(input)
	if err != nil {
		var invalid *mixture.InvalidInputError
		if !errors.As(err, &invalid) {
			applog.Error(r.Context(), "calculation failed", "error", err)
			http.Error(w, "calculation failed", http.StatusInternalServerError)
			return
		}
		status = http.StatusUnprocessableEntity
		resp = calculateResponse{Valid: false, Errors: invalid.Errors}
	} else {
		resp = calculateResponse{
			Valid:  true,
			Result: &result,
			Display: &displayValues{
				MasterBlend:    mixture.FormatWeight(result.MasterBlend),
				EpsomSalt:      mixture.FormatWeight(result.EpsomSalt),
				CalciumNitrate: mixture.FormatWeight(result.CalciumNitrate),
				TotalVolume:    mixture.FormatVolume(result.TotalVolumeML, input.System),
			},
		}
	}

	writeJSONWithETag(w, r, status, resp)
}

func decodeCalculateRequest(r *http.Request) (mixture.CalculationInput, mixture.Variant, error) {
	var req calculateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxAPIBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return mixture.CalculationInput{}, mixture.Variant{}, err
	}

	variant := defaults.Variant
	if strings.TrimSpace(req.Variant) != "" {
		variant = mixture.VariantByName(req.Variant)
	}
	system := mixture.ParseSystem(req.System)
	if system == "" {
		system = preferredSystem(r)
	}

	input := mixture.CalculationInput{
		Unit:   mixture.ParseUnit(req.Unit),
		System: system,
	}
	if req.ContainerSize != nil {
		input.ContainerSize = *req.ContainerSize
	}
	return input, variant, nil
}

// APIUnits lists the units offered by a variant with their slider ranges.
// With a system parameter it also describes that system's slider.
func APIUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	variant := defaults.Variant
	if name := strings.TrimSpace(query.Get(fieldVariant)); name != "" {
		variant = mixture.VariantByName(name)
	}

	raw := strings.TrimSpace(query.Get(fieldSystem))
	system := mixture.ParseSystem(raw)
	if raw != "" && system == "" {
		http.Error(w, "invalid measurement system", http.StatusBadRequest)
		return
	}

	resp := unitsResponse{Variant: variant.Name, Units: make([]unitResponse, 0, len(variant.Units))}
	for _, u := range variant.Units {
		factor, _ := mixture.Factor(u)
		resp.Units = append(resp.Units, unitResponse{
			Unit:        string(u),
			DisplayName: mixture.DisplayName(u),
			FactorML:    factor,
			Range:       mixture.RangeFor(u),
		})
	}
	if system != "" {
		resp.Slider = &sliderResponse{
			System: string(system),
			Unit:   string(mixture.SystemBaseUnit(system)),
			Range:  mixture.SystemRange(system),
		}
	}
	writeJSONWithETag(w, r, http.StatusOK, resp)
}

// APIPresets lists the container preset catalogue, optionally filtered by
// measurement system.
func APIPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if presetStore == nil {
		http.Error(w, "presets are unavailable because no database connection is configured", http.StatusServiceUnavailable)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get(fieldSystem))
	system := mixture.ParseSystem(raw)
	if raw != "" && system == "" {
		http.Error(w, "invalid measurement system", http.StatusBadRequest)
		return
	}

	list, err := presetStore.List(r.Context(), system)
	if err != nil {
		if errors.Is(err, gorm.ErrInvalidDB) {
			http.Error(w, "presets are unavailable", http.StatusServiceUnavailable)
			return
		}
		applog.Error(r.Context(), "failed to list presets", "error", err)
		http.Error(w, "failed to load presets", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.ContainerPreset{}
	}
	writeJSONWithETag(w, r, http.StatusOK, list)
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		applog.Error(r.Context(), "failed to encode json response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	sum := blake2b.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")

	if status == http.StatusOK && r.Method == http.MethodGet && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		applog.Error(r.Context(), "failed to write json response", "error", err)
	}
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
