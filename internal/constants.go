/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	Version             = "0.1.0"
	DefaultResultBucket = "bopmatic-swisssim-prod-results"
	DefaultEnvFile      = ".env"
)
