package quadgh

// Nodes and weights of the 64-point Gauss–Hermite rule, ascending by node.
// The rule integrates exp(-x²)·f(x) over ℝ exactly for polynomial f up to
// degree 127; the weights sum to √π. The arrays are read-only and mirror
// symmetric: xgh64[i] == -xgh64[63-i], wgh64[i] == wgh64[63-i].
var (
	xgh64 = []float64{
		-10.5261231679605458833268263,
		-9.8952875868295390212044615,
		-9.3731595496467211625456524,
		-8.9072490999647697572959729,
		-8.4775290833798630905641663,
		-8.0736872850102252258587911,
		-7.6895401640404968284478042,
		-7.3210130327809492011895694,
		-6.9652411205511075292426422,
		-6.6201122626360273790366601,
		-6.2840112287748282354180932,
		-5.9556663267994860453445672,
		-5.6340521643499721472499205,
		-5.3183252246332708573236495,
		-5.0077796021987681964437026,
		-4.7018156474074998160975380,
		-4.3999171682281376477679325,
		-4.1016344745666567149709812,
		-3.8065715139453604611659720,
		-3.5143759357409062115399506,
		-3.2247312919920357258481711,
		-2.9373508230046218096853390,
		-2.6519724354306350110054578,
		-2.3683545886324014041115113,
		-2.0862728798817620208325633,
		-1.8055171714655449189037736,
		-1.5258891402098636629489701,
		-1.2472001569431179406935645,
		-0.9692694230711780167435415,
		-0.6919223058100445772682193,
		-0.4149888241210786845769291,
		-0.1383022449870097241150498,
		+0.1383022449870097241150498,
		+0.4149888241210786845769291,
		+0.6919223058100445772682193,
		+0.9692694230711780167435415,
		+1.2472001569431179406935645,
		+1.5258891402098636629489701,
		+1.8055171714655449189037736,
		+2.0862728798817620208325633,
		+2.3683545886324014041115113,
		+2.6519724354306350110054578,
		+2.9373508230046218096853390,
		+3.2247312919920357258481711,
		+3.5143759357409062115399506,
		+3.8065715139453604611659720,
		+4.1016344745666567149709812,
		+4.3999171682281376477679325,
		+4.7018156474074998160975380,
		+5.0077796021987681964437026,
		+5.3183252246332708573236495,
		+5.6340521643499721472499205,
		+5.9556663267994860453445672,
		+6.2840112287748282354180932,
		+6.6201122626360273790366601,
		+6.9652411205511075292426422,
		+7.3210130327809492011895694,
		+7.6895401640404968284478042,
		+8.0736872850102252258587911,
		+8.4775290833798630905641663,
		+8.9072490999647697572959729,
		+9.3731595496467211625456524,
		+9.8952875868295390212044615,
		+10.5261231679605458833268263,
	}

	wgh64 = []float64{
		5.5357065358569428205754633e-49,
		1.6797479901081592186662883e-43,
		3.4211380112557405043272218e-39,
		1.5573906246297638023093354e-35,
		2.5496608991129992566047666e-32,
		1.9291035954649668503019688e-29,
		7.8617977889259103690999915e-27,
		1.9117068833006428299584570e-24,
		2.9828627842798511544787007e-22,
		3.1522545665037814161213467e-20,
		2.3518847106758191169576759e-18,
		1.2800933913224380416395633e-16,
		5.2186237265908475229578085e-15,
		1.6283407307097203620843071e-13,
		3.9591777669477239272364459e-12,
		7.6152172501454513533152957e-11,
		1.1736167423215493435425065e-09,
		1.4651253164761093549266220e-08,
		1.4955329367272470611024617e-07,
		1.2583402510311845761578422e-06,
		8.7884992308503591814440474e-06,
		5.1259291357862746608219114e-05,
		2.5098369851306248608236202e-04,
		1.0363290995075776634567417e-03,
		3.6225869785344587606681254e-03,
		1.0756040509879137049465173e-02,
		2.7203128953688918453834821e-02,
		5.8739981964099434549688946e-02,
		1.0849834930618684063302585e-01,
		1.7168584234908370200072797e-01,
		2.3299478606267804665056603e-01,
		2.7137742494130397794560651e-01,
		2.7137742494130397794560651e-01,
		2.3299478606267804665056603e-01,
		1.7168584234908370200072797e-01,
		1.0849834930618684063302585e-01,
		5.8739981964099434549688946e-02,
		2.7203128953688918453834821e-02,
		1.0756040509879137049465173e-02,
		3.6225869785344587606681254e-03,
		1.0363290995075776634567417e-03,
		2.5098369851306248608236202e-04,
		5.1259291357862746608219114e-05,
		8.7884992308503591814440474e-06,
		1.2583402510311845761578422e-06,
		1.4955329367272470611024617e-07,
		1.4651253164761093549266220e-08,
		1.1736167423215493435425065e-09,
		7.6152172501454513533152957e-11,
		3.9591777669477239272364459e-12,
		1.6283407307097203620843071e-13,
		5.2186237265908475229578085e-15,
		1.2800933913224380416395633e-16,
		2.3518847106758191169576759e-18,
		3.1522545665037814161213467e-20,
		2.9828627842798511544787007e-22,
		1.9117068833006428299584570e-24,
		7.8617977889259103690999915e-27,
		1.9291035954649668503019688e-29,
		2.5496608991129992566047666e-32,
		1.5573906246297638023093354e-35,
		3.4211380112557405043272218e-39,
		1.6797479901081592186662883e-43,
		5.5357065358569428205754633e-49,
	}
)
