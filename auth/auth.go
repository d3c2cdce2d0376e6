package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	registerHandler(w, r)
}
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func GetMe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	getMeHandler(w, r)
}
func UpdateMe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	updateMeHandler(w, r)
}
