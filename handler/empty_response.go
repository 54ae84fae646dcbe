package handler

import "net/http"

type emptyResponse struct{}

func (emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Empty answers 204 No Content, e.g. after a logout or a deletion.
func Empty() Response {
	return emptyResponse{}
}
