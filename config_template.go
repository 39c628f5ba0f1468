package main

const configTemplate = `# {{ index .Help "api" }}
api: openrouter
# {{ index .Help "model" }}
model: openai/gpt-4o-mini
# {{ index .Help "base-url" }}
base-url: https://openrouter.ai/api/v1
# {{ index .Help "api-key-env" }}
api-key-env: OPENROUTER_API_KEY
# {{ index .Help "service-tier" }}
# service-tier: default
# {{ index .Help "max-retries" }}
max-retries: 3
# {{ index .Help "initial-delay" }}
initial-delay: 1s
# {{ index .Help "models-url" }}
models-url: https://openrouter.ai/api/v1/models
# {{ index .Help "pricing-url" }}
pricing-url: https://openrouter.ai/models?max_price=0
# {{ index .Help "artifact-url" }}
# artifact-url: https://example.com/free-models.json
# {{ index .Help "cache-ttl" }}
cache-ttl: 1h
# {{ index .Help "browser-timeout" }}
browser-timeout: 1m
# {{ index .Help "target-config" }}
# target-config: ~/.config/some-tool/settings.json
# {{ index .Help "target-key" }}
target-key: freeModels
# {{ index .Help "quiet" }}
quiet: false
`
