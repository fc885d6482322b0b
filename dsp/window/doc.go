// Package window generates the window functions used to design the
// oversampling FIR prototype (Kaiser) and to analyse engine output
// spectra (Blackman-Harris).
package window
