package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// RegisterRoutes registers the daogame query HTTP routes on the given router.
func RegisterRoutes(clientCtx client.Context, r *mux.Router) {
	r.HandleFunc(fmt.Sprintf("/%s/proposal/{proposalID}", types.ModuleName), queryProposalHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/%s/proposal/{proposalID}/vote/{voter}", types.ModuleName), queryVoteHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/%s/score/{player}", types.ModuleName), queryScoreHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/%s/leaderboard", types.ModuleName), queryLeaderboardHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/%s/active", types.ModuleName), queryIsActiveHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/%s/params", types.ModuleName), queryParamsHandlerFn(clientCtx)).Methods("GET")
}

func queryProposalHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, ok := parseProposalID(w, r)
		if !ok {
			return
		}
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		route := fmt.Sprintf("custom/%s/%s/%d", types.QuerierRoute, types.QueryProposal, proposalID)
		res, height, err := clientCtx.QueryWithData(route, nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func queryVoteHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, ok := parseProposalID(w, r)
		if !ok {
			return
		}
		voter := mux.Vars(r)["voter"]
		if _, err := sdk.AccAddressFromBech32(voter); rest.CheckBadRequestError(w, err) {
			return
		}
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		route := fmt.Sprintf("custom/%s/%s/%d/%s", types.QuerierRoute, types.QueryVote, proposalID, voter)
		res, height, err := clientCtx.QueryWithData(route, nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func queryScoreHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := mux.Vars(r)["player"]
		if _, err := sdk.AccAddressFromBech32(player); rest.CheckBadRequestError(w, err) {
			return
		}
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		route := fmt.Sprintf("custom/%s/%s/%s", types.QuerierRoute, types.QueryPlayerScore, player)
		res, height, err := clientCtx.QueryWithData(route, nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func queryLeaderboardHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit uint32
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.ParseUint(v, 10, 32)
			if rest.CheckBadRequestError(w, err) {
				return
			}
			limit = uint32(parsed)
		}
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		bz, err := clientCtx.LegacyAmino.MarshalJSON(types.QueryLeaderboardParams{Limit: limit})
		if rest.CheckInternalServerError(w, err) {
			return
		}
		route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryLeaderboard)
		res, height, err := clientCtx.QueryWithData(route, bz)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func queryIsActiveHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryIsGameActive)
		res, height, err := clientCtx.QueryWithData(route, nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func queryParamsHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}
		route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryParams)
		res, height, err := clientCtx.QueryWithData(route, nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}
		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponseBare(w, clientCtx, res)
	}
}

func parseProposalID(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	v, err := strconv.ParseUint(mux.Vars(r)["proposalID"], 10, 32)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("proposal id: %s", err))
		return 0, false
	}
	return uint32(v), true
}
