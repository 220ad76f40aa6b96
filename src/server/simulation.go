package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"elevaid/src/simulation"
	"elevaid/src/types"
	"elevaid/src/utils"
)

// Times are in milliseconds on the wire.
type simulationBody struct {
	SelectedFloors []int    `json:"selectedFloors"`
	OkuFloor       *int     `json:"okuFloor"`
	Direction      string   `json:"direction"`
	TravelTime     *float64 `json:"travelTime"`
	StoppageTime   *float64 `json:"stoppageTime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type queuesResponse struct {
	TraditionalQueue []int `json:"traditionalQueue"`
	ElevaidQueue     []int `json:"elevaidQueue"`
	Success          bool  `json:"success"`
}

type journeyTimes struct {
	WaitingTime int64 `json:"waitingTime"`
	TravelTime  int64 `json:"travelTime"`
	TotalTime   int64 `json:"totalTime"`
}

type timesResponse struct {
	Traditional     journeyTimes `json:"traditional"`
	Elevaid         journeyTimes `json:"elevaid"`
	TimeSaved       int64        `json:"timeSaved"`
	PriorityReached bool         `json:"priorityReached"`
}

func (s *Server) decodeRequest(r *http.Request) (simulation.Request, error) {
	var body simulationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return simulation.Request{}, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	req := simulation.Request{
		Floors: body.SelectedFloors,
		Timing: types.TimingConfig{
			TravelPerFloor: s.cfg.Timing.TravelPerFloor,
			Stoppage:       s.cfg.Timing.Stoppage,
		},
	}
	if body.OkuFloor != nil {
		req.Priority = types.Priority(*body.OkuFloor)
	}
	if body.Direction == "" {
		body.Direction = types.Down.String()
	}
	dir, err := types.ParseDirection(body.Direction)
	if err != nil {
		return simulation.Request{}, err
	}
	req.Direction = dir
	if body.TravelTime != nil {
		if req.Timing.TravelPerFloor, err = utils.FromMillis(*body.TravelTime); err != nil {
			return simulation.Request{}, fmt.Errorf("travelTime: %w", err)
		}
	}
	if body.StoppageTime != nil {
		if req.Timing.Stoppage, err = utils.FromMillis(*body.StoppageTime); err != nil {
			return simulation.Request{}, fmt.Errorf("stoppageTime: %w", err)
		}
	}
	return req, nil
}

func (s *Server) handleSimulationData(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	traditional, elevaid, err := simulation.Queues(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, queuesResponse{
		TraditionalQueue: traditional,
		ElevaidQueue:     elevaid,
		Success:          true,
	})
}

func (s *Server) handleCalculateTimes(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !req.Priority.Set {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No OKU floor specified"})
		return
	}
	report, err := simulation.Run(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, timesResponse{
		Traditional:     toJourneyTimes(report.Traditional),
		Elevaid:         toJourneyTimes(report.ElevAid),
		TimeSaved:       utils.Millis(report.TimeSaved),
		PriorityReached: report.PriorityReached,
	})
}

func toJourneyTimes(res types.JourneyResult) journeyTimes {
	return journeyTimes{
		WaitingTime: utils.Millis(res.WaitingTime),
		TravelTime:  utils.Millis(res.TravelTime),
		TotalTime:   utils.Millis(res.TotalTime),
	}
}
