package sod_shock_tube

import (
	"math"
)

/*
Analytic solution of Sod's shock tube on x in [0,1], diaphragm at x = 0.5,
gamma = 1.4, left state (rho,p,u) = (1,1,0), right state (0.125,0.1,0).

Solution structure at time t > 0, left to right: undisturbed left state,
rarefaction fan between x1 and x2, contact plateau to x3, post-shock plateau
to the shock at x4, undisturbed right state.
*/

// Regions holds the self-similar wave structure at time t.
type Regions struct {
	X1, X2, X3, X4     float64 // fan head, fan tail, contact, shock
	PPost, VPost       float64 // pressure and velocity between the fan and the shock
	RhoMiddle, RhoPost float64 // density on the contact plateau and post-shock
}

func SOD_regions(t float64) (r Regions) {
	var (
		x0, rhoL, pL = 0.5, 1., 1.
		rhoR, pR     = 0.125, 0.1
		gamma        = 1.4
		mu           = math.Sqrt((gamma - 1) / (gamma + 1))
		cL           = math.Sqrt(gamma * pL / rhoL)
	)
	r.PPost = fzero(sod_func, math.Pi)
	r.VPost = 2 * (math.Sqrt(gamma) / (gamma - 1)) * (1 - math.Pow(r.PPost, (gamma-1)/(2*gamma)))
	r.RhoPost = rhoR * ((r.PPost / pR) + mu*mu) / (1 + mu*mu*(r.PPost/pR))
	r.RhoMiddle = rhoL * math.Pow(r.PPost/pL, 1./gamma)
	vShock := r.VPost * (r.RhoPost / rhoR) / ((r.RhoPost / rhoR) - 1.)
	c2 := cL - 0.5*(gamma-1.)*r.VPost
	r.X1 = x0 - cL*t
	r.X2 = x0 + t*(r.VPost-c2)
	r.X3 = x0 + r.VPost*t
	r.X4 = x0 + vShock*t
	return
}

// SOD_calc samples the analytic solution at the given locations.
func SOD_calc(t float64, X []float64) (Rho, P, U, E []float64) {
	var (
		x0, rhoL, pL, uL = 0.5, 1., 1., 0.
		rhoR, pR, uR     = 0.125, 0.1, 0.
		gamma            = 1.4
		mu               = math.Sqrt((gamma - 1) / (gamma + 1))
		cL               = math.Sqrt(gamma * pL / rhoL)
		r                = SOD_regions(t)
	)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		switch {
		case x < r.X1:
			Rho[i] = rhoL
			P[i] = pL
			U[i] = uL
		case x <= r.X2:
			c := mu*mu*((x0-x)/t) + (1.-mu*mu)*cL
			Rho[i] = rhoL * math.Pow(c/cL, 2/(gamma-1))
			P[i] = pL * math.Pow(Rho[i]/rhoL, gamma)
			U[i] = (1. - mu*mu) * ((-(x0 - x) / t) + cL)
		case x <= r.X3:
			Rho[i] = r.RhoMiddle
			P[i] = r.PPost
			U[i] = r.VPost
		case x <= r.X4:
			Rho[i] = r.RhoPost
			P[i] = r.PPost
			U[i] = r.VPost
		default:
			Rho[i] = rhoR
			P[i] = pR
			U[i] = uR
		}
		E[i] = P[i] / ((gamma - 1.) * Rho[i])
	}
	return
}

// fzero is a secant iteration, good enough for the monotone sod_func.
func fzero(f func(P float64) (y float64), start float64) float64 {
	var (
		tol = 0.0000001
		res float64
	)
	start_old := start / 2
	res = f(start_old)
	for math.Abs(res) > tol {
		resNew := f(start)
		deriv := (start - start_old) / (resNew - res)
		start_new := math.Abs(start - 0.01*f(start)/deriv)
		start_old = start
		start = start_new
		res = resNew
	}
	return start
}

// sod_func is zero at the post-shock pressure, matching the shock jump
// against the rarefaction through the contact.
func sod_func(P float64) (y float64) {
	var (
		rhoR, pR = 0.125, 0.1
		gamma    = 1.4
		mu       = math.Sqrt((gamma - 1) / (gamma + 1))
		mu2      = mu * mu
	)
	y = (P-pR)*math.Sqrt((1-mu2)*(1-mu2)/(rhoR*(P+mu2*pR))) -
		2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(P, (gamma-1)/(2*gamma)))
	return
}
