package quadgk

// Gauss–Kronrod abscissae and weights on the reference interval [-1, 1].
//
// Layout per rule: xgk lists every Kronrod node in ascending order; wgk lists
// the matching Kronrod weights; wg lists the weights of the embedded Gauss
// rule, whose nodes sit at the odd indices of xgk (xgk[1], xgk[3], ...).
// The arrays are read-only; values carry the classical 33-digit table
// precision and round to the nearest float64.

// 15-point Kronrod rule with embedded 7-point Gauss rule.
var (
	xgk15 = []float64{
		-0.991455371120812639206854697526329,
		-0.949107912342758524526189684047851,
		-0.864864423359769072789712788640926,
		-0.741531185599394439863864773280788,
		-0.586087235467691130294144838258730,
		-0.405845151377397166906606412076961,
		-0.207784955007898467600689403773245,
		+0.000000000000000000000000000000000,
		+0.207784955007898467600689403773245,
		+0.405845151377397166906606412076961,
		+0.586087235467691130294144838258730,
		+0.741531185599394439863864773280788,
		+0.864864423359769072789712788640926,
		+0.949107912342758524526189684047851,
		+0.991455371120812639206854697526329,
	}

	wgk15 = []float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
		0.204432940075298892414161999234649,
		0.190350578064785409913256402421014,
		0.169004726639267902826583426598550,
		0.140653259715525918745189590510238,
		0.104790010322250183839876322541518,
		0.063092092629978553290700663189204,
		0.022935322010529224963732008058970,
	}

	wg15 = []float64{
		0.129484966168869693270611432679082,
		0.279705391489276667901467771423780,
		0.381830050505118944950369775488975,
		0.417959183673469387755102040816327,
		0.381830050505118944950369775488975,
		0.279705391489276667901467771423780,
		0.129484966168869693270611432679082,
	}
)

// 21-point Kronrod rule with embedded 10-point Gauss rule.
var (
	xgk21 = []float64{
		-0.995657163025808080735527280689003,
		-0.973906528517171720077964012084452,
		-0.930157491355708226001207180059508,
		-0.865063366688984510732096688423493,
		-0.780817726586416897063717578345042,
		-0.679409568299024406234327365114874,
		-0.562757134668604683339000099272694,
		-0.433395394129247190799265943165784,
		-0.294392862701460198131126603103866,
		-0.148874338981631210884826001129720,
		+0.000000000000000000000000000000000,
		+0.148874338981631210884826001129720,
		+0.294392862701460198131126603103866,
		+0.433395394129247190799265943165784,
		+0.562757134668604683339000099272694,
		+0.679409568299024406234327365114874,
		+0.780817726586416897063717578345042,
		+0.865063366688984510732096688423493,
		+0.930157491355708226001207180059508,
		+0.973906528517171720077964012084452,
		+0.995657163025808080735527280689003,
	}

	wgk21 = []float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077958109831074,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
		0.147739104901338491374841515972068,
		0.142775938577060080797094273138717,
		0.134709217311473325928054001771707,
		0.123491976262065851077958109831074,
		0.109387158802297641899210590325805,
		0.093125454583697605535065465083366,
		0.075039674810919952767043140916190,
		0.054755896574351996031381300244580,
		0.032558162307964727478818972459390,
		0.011694638867371874278064396062192,
	}

	wg21 = []float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
		0.295524224714752870173892994651338,
		0.269266719309996355091226921569469,
		0.219086362515982043995534934228163,
		0.149451349150580593145776339657697,
		0.066671344308688137593568809893332,
	}
)

// The two rule pairs used by the integrator: gk21 for finite domains,
// gk15 for transformed infinite domains.
var (
	gk15 = rule{xgk: xgk15, wgk: wgk15, wg: wg15}
	gk21 = rule{xgk: xgk21, wgk: wgk21, wg: wg21}
)
