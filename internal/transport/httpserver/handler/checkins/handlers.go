package checkins

import (
	"context"
	"net/http"
	"time"

	checkinsdomain "gym-membership-go/internal/domain/checkins"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"
	"gym-membership-go/pkg/logger"
)

type Gate interface {
	CheckIn(ctx context.Context, memberID string) (*checkinsdomain.CheckIn, error)
}

type Handlers struct {
	CheckIns Gate
	log      logger.Logger
}

func New(checkIns Gate, log logger.Logger) *Handlers {
	return &Handlers{
		CheckIns: checkIns,
		log:      log,
	}
}

type checkInRequest struct {
	MemberID string `json:"memberId"`
}

type checkInResponse struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handlers) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	memberID, err := commonhandler.ParseID(req.MemberID, "member id")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	checkIn, err := h.CheckIns.CheckIn(r.Context(), memberID)
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "checkins.create", err, "member_id", memberID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, checkInResponse{
		ID:        checkIn.ID,
		MemberID:  checkIn.MemberID,
		Timestamp: checkIn.Timestamp,
	})
}
