package members

import (
	"net/http"
	"time"

	membersdomain "gym-membership-go/internal/domain/members"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"

	"github.com/go-chi/chi/v5"
)

type createMemberRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type memberSummaryResponse struct {
	memberResponse
	ActiveMembership       *commonhandler.MembershipResponse `json:"activeMembership"`
	LastCheckIn            *time.Time                        `json:"lastCheckIn"`
	CheckInCountLast30Days int64                             `json:"checkInCountLast30Days"`
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	if err := req.validate(); err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	member, err := h.Members.CreateMember(r.Context(), membersdomain.CreateMemberInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "members.create", err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, toMemberResponse(*member))
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	items, err := h.Members.ListMembers(r.Context(), search)
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "members.list", err, "search", search)
		return
	}

	response := make([]memberResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMemberResponse(item))
	}

	commonhandler.WriteJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseID(chi.URLParam(r, "id"), "member id")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	summary, err := h.Members.GetMemberSummary(r.Context(), id)
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "members.get", err, "member_id", id)
		return
	}
	if summary == nil {
		commonhandler.WriteError(w, http.StatusNotFound, "member_not_found", "member not found")
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, memberSummaryResponse{
		memberResponse:         toMemberResponse(summary.Member),
		ActiveMembership:       commonhandler.ToMembershipResponse(summary.ActiveMembership),
		LastCheckIn:            summary.LastCheckIn,
		CheckInCountLast30Days: summary.CheckInCountLast30Days,
	})
}

func (req createMemberRequest) validate() error {
	if err := commonhandler.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := commonhandler.ValidateName(req.FirstName, "first name"); err != nil {
		return err
	}
	return commonhandler.ValidateName(req.LastName, "last name")
}

func toMemberResponse(member membersdomain.Member) memberResponse {
	return memberResponse{
		ID:        member.ID,
		Email:     member.Email,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
