// SPDX-License-Identifier: EPL-2.0

// Package tables holds the read-only lookup data of MPEG-1/2 Audio Layer I
// and II: bitrate and sample rate indices, the Layer II bit allocation
// tables (ISO/IEC 11172-3 B.2a to B.2d, ISO/IEC 13818-3 B.1), quantizer
// classes, scale factors and the synthesis window.
package tables
